package main

import (
	"os"

	"github.com/saketmishra7224/calmify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
