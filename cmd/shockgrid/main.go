package main

import "option-surface/internal/cli"

func main() {
	cli.Execute()
}
