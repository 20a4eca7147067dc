package main

import "github.com/forPelevin/stampcut/internal/cli"

func main() {
	cli.Main()
}
