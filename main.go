package main

import "remote-controller/cmd"

func main() {
	cmd.Execute()
}
