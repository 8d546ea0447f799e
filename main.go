// Command goshell is a small interactive shell: a line editor with
// history, a quote-aware pipeline parser, and a process-orchestrating
// executor.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "goshell",
		Short:   "A small interactive shell",
		Args:    cobra.NoArgs,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			repl := NewREPL(cfg)
			os.Exit(repl.Run())
			return nil
		},
	}
	rootCmd.SetVersionTemplate("goshell {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(fmt.Errorf("goshell: %w", err))
	}
}
