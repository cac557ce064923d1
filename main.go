package main

import "locextract/internal/cli"

func main() {
	cli.Execute()
}
