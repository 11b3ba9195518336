package main

import "github.com/datprobe/datprobe/cmd"

func main() {
	cmd.Execute()
}
