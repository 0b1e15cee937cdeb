package main

import (
	"github.com/mangocompatdelight/datagen/pkg/cli"
)

func main() {
	cli.Execute()
}
