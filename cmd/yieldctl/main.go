package main

import "github.com/vfg2006/yield-manager-api/internal/cli"

func main() {
	cli.Execute()
}
