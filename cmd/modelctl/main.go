package main

import (
	"fmt"
	"os"

	"github.com/diabd/platform/pkg/common/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modelctl",
	Short: "Evaluate and inspect the deployed diabetes model bundle",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(infoCmd)
}

func main() {
	logger.Init()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
