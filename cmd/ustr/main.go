package main

import (
	"os"

	"github.com/42atomys/go-ustr/cmd/ustr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
