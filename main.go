package main

import (
	"os"

	"github.com/cristianoliveira/glide/cmd"
	"github.com/cristianoliveira/glide/internal/colors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		colors.Error(err.Error())
		os.Exit(1)
	}
}
