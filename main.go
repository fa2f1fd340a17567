package main

import "nathanbeddoewebdev/courseplan/cmd"

func main() {
	cmd.Execute()
}
