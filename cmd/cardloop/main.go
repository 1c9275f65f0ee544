package main

import (
	"os"

	"cardloop/cmd/cardloop/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
