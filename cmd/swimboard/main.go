package main

import (
	"os"

	"github.com/swimboard/swimboard/internal/pkg/cli"
)

func main() {
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(cmd.Execute())
}
