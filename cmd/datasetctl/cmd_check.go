package main

import (
	"fmt"

	"github.com/diabd/platform/pkg/common/config"
	"github.com/diabd/platform/pkg/dataset"
	"github.com/diabd/platform/pkg/features"
	"github.com/spf13/cobra"
)

var checkFlags struct {
	path string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report row counts, class distribution and clinical ranges",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFlags.path, "path", "", "Dataset CSV (defaults to RAW_DATA_PATH)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	path := checkFlags.path
	if path == "" {
		path = cfg.RawDataPath
	}

	encoder, err := newEncoder(cfg)
	if err != nil {
		return err
	}

	rows, err := dataset.ReadCSV(path)
	if err != nil {
		return err
	}

	samples, err := encoder.EncodeDataset(rows, true)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dataset: %s\n", path)
	fmt.Fprintf(out, "Raw rows:      %d\n", len(rows))
	fmt.Fprintf(out, "Encoded rows:  %d (rows with unmappable target are dropped)\n", len(samples))

	counts := dataset.Distribution(samples)
	fmt.Fprintf(out, "Class balance: non-diabetic=%d diabetic=%d\n", counts[0], counts[1])

	for _, field := range []string{"glucose", "bmi"} {
		bands := features.ClinicalThresholds[field]
		tally := map[string]int{}
		for _, sample := range samples {
			v := float64(sample.Row[field])
			for name, band := range bands {
				if v >= band.Min && v <= band.Max {
					tally[name]++
				}
			}
		}
		fmt.Fprintf(out, "%-8s normal=%d elevated=%d high=%d\n",
			field, tally["normal"], tally["prediabetes"]+tally["overweight"], tally["diabetes"]+tally["obese"])
	}

	return nil
}
