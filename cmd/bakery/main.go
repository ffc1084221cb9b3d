package main

import "github.com/andrescamacho/bakery-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
