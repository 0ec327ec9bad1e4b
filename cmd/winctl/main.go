package main

import "github.com/1broseidon/winctl/internal/cli"

func main() {
	cli.Execute()
}
