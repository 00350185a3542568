package main

import "classroom/internal/cli"

func main() {
	cli.Execute()
}
