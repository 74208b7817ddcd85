package main

import "github.com/joa23/gridtable/internal/cli"

func main() {
	cli.Execute()
}
