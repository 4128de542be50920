package main

import "littlelemon/internal/cli"

func main() {
	cli.Execute()
}
