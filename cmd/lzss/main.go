package main

import (
	"fmt"
	"os"

	"github.com/woozymasta/lzss-generic/internal/command"
)

func main() {
	if err := command.NewRootCommandeer().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	os.Exit(0)
}
