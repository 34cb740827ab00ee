package main

import "meshconv/internal/cli"

func main() {
	cli.Execute()
}
