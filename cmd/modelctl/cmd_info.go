package main

import (
	"encoding/json"
	"fmt"

	"github.com/diabd/platform/pkg/common/config"
	"github.com/diabd/platform/pkg/model"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the deployed bundle and its training metadata",
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	out := cmd.OutOrStdout()

	bundle, err := model.LoadBundle(cfg.ModelPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Algorithm: %s\n", bundle.Algorithm)
	fmt.Fprintf(out, "Trained:   %s\n", bundle.Timestamp)
	fmt.Fprintf(out, "Features:  %d\n", len(bundle.Features))
	fmt.Fprintf(out, "Classes:   %v\n", bundle.Target)

	meta, err := model.LoadMetadata(cfg.MetaPath)
	if err != nil {
		fmt.Fprintln(out, "Metadata:  unavailable")
		return nil
	}
	content, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Metadata:\n%s\n", content)
	return nil
}
