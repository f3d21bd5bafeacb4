package main

import (
	"os"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
