package main

import "timedist/cmd"

func main() {
	cmd.Execute()
}
