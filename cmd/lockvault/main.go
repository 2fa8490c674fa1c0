package main

import (
	"os"

	"github.com/mkoshelev/lockvault/internal/buildinfo"
	"github.com/mkoshelev/lockvault/internal/cli"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)
	cli.Execute()
}
