package main

import "github.com/bkane2/ulf-lib/pkg/cli"

func main() {
	cli.Execute()
}
