package main

import "github.com/lokistudio/detell/internal/cli"

func main() {
	cli.Execute()
}
