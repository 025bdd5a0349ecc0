package main

import (
	"fmt"
	"os"

	"github.com/diabd/platform/pkg/common/config"
	"github.com/diabd/platform/pkg/common/logger"
	"github.com/diabd/platform/pkg/features"
	"github.com/diabd/platform/pkg/vocabulary"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datasetctl",
	Short: "Inspect and balance the DiaBD diabetes dataset",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(balanceCmd)
}

func main() {
	logger.Init()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEncoder(cfg *config.Config) (*features.Encoder, error) {
	vocab, err := vocabulary.Load(cfg.VocabularyPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Vocabulary file unavailable, using defaults")
	}
	return features.NewEncoder(vocab), nil
}
