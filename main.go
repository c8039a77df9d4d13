package main

import "github.com/electr1fy0/paperfold/cmd"

func main() {
	cmd.Execute()
}
