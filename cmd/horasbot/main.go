package main

import (
	"os"

	"github.com/arebot/horasbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
