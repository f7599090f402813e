package main

import (
	"os"

	"convertis/internal/cli"
	"convertis/internal/platform/config"
)

func main() {
	_ = config.LoadDotEnv()
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
