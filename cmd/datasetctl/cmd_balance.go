package main

import (
	"fmt"

	"github.com/diabd/platform/pkg/common/config"
	"github.com/diabd/platform/pkg/dataset"
	"github.com/spf13/cobra"
)

var balanceFlags struct {
	input  string
	output string
	seed   int64
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Equalize the class distribution and write the balanced CSV",
	RunE:  runBalance,
}

func init() {
	f := balanceCmd.Flags()
	f.StringVar(&balanceFlags.input, "input", "", "Raw dataset CSV (defaults to RAW_DATA_PATH)")
	f.StringVar(&balanceFlags.output, "output", "", "Balanced CSV destination (defaults to BALANCED_DATA_PATH)")
	f.Int64Var(&balanceFlags.seed, "seed", 0, "Oversampling seed (defaults to BALANCE_RAND_SEED)")
}

func runBalance(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	input := balanceFlags.input
	if input == "" {
		input = cfg.RawDataPath
	}
	output := balanceFlags.output
	if output == "" {
		output = cfg.BalancedDataPath
	}
	seed := balanceFlags.seed
	if seed == 0 {
		seed = cfg.BalanceRandSeed
	}

	encoder, err := newEncoder(cfg)
	if err != nil {
		return err
	}

	rows, err := dataset.ReadCSV(input)
	if err != nil {
		return err
	}

	samples, err := encoder.EncodeDataset(rows, true)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	before := dataset.Distribution(samples)
	balanced := dataset.Oversample(samples, seed)
	after := dataset.Distribution(balanced)

	if err := dataset.WriteEncodedCSV(output, balanced); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Before: non-diabetic=%d diabetic=%d\n", before[0], before[1])
	fmt.Fprintf(out, "After:  non-diabetic=%d diabetic=%d\n", after[0], after[1])
	fmt.Fprintf(out, "Balanced dataset written to %s\n", output)
	return nil
}
