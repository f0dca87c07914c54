package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"equiprof/app"
	"equiprof/internal/analysis"
	"equiprof/internal/config"
)

func main() {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "equiprof",
		Short: "Statistical profiler for equipment-parameter tables",
	}

	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var prevHeader []string
	var features []string
	var maxK int
	var previewOnly bool
	var concurrency int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Profile one or more CSV/XLSX files and print the result as JSON",
		Long: `Profile equipment-parameter tables.

Each file is decoded (.xlsx as a spreadsheet, anything else as UTF-8 CSV),
validated against the required columns, and run through the full statistical
pipeline. Multiple files are analyzed concurrently.

Example: equiprof analyze plant_a.csv plant_b.xlsx --features Flowrate,Pressure --max-k 6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			service := app.NewProfileService(config.FromEnv())
			opts := app.AnalyzeOptions{
				PreviousHeader: prevHeader,
				FeatureColumns: features,
				MaxClusters:    maxK,
			}

			profiles := make([]*analysis.Profile, len(args))
			g, ctx := errgroup.WithContext(ctx)
			g.SetLimit(concurrency)
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("failed to read %s: %w", path, err)
					}
					profile, err := service.Analyze(ctx, data, path, opts)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					profiles[i] = profile
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if previewOnly {
				for i, profile := range profiles {
					if len(args) > 1 {
						fmt.Printf("# %s\n", args[i])
					}
					fmt.Print(profile.Preview)
				}
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			for _, profile := range profiles {
				if err := enc.Encode(profile); err != nil {
					return fmt.Errorf("failed to encode profile: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&prevHeader, "prev-header", nil, "previous header columns for schema-drift detection")
	cmd.Flags().StringSliceVar(&features, "features", nil, "numeric columns to cluster on (default: inferred numeric columns)")
	cmd.Flags().IntVar(&maxK, "max-k", 0, "k-means sweep ceiling (default from config)")
	cmd.Flags().BoolVar(&previewOnly, "preview", false, "print only the CSV preview")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "max files analyzed in parallel")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall analysis timeout")

	return cmd
}
