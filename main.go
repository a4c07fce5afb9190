package main

import "github.com/moyu-x/file-organiser/cmd"

func main() {
	cmd.Execute()
}
