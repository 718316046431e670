package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/chromasync/internal/cli"
	"github.com/arthur-debert/chromasync/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render(os.Stderr, "Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
