package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"distkit/adapters/distributions"
	"distkit/app"
	"distkit/domain/dist"
	"distkit/internal/config"
	"distkit/internal/logging"
	"distkit/internal/validation"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "distkit",
		Short: "Distkit CLI for inspecting and evaluating probability distributions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			logging.Init(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newTypesCmd(),
		newMetadataCmd(),
		newValidateCmd(),
		newCurveCmd(),
		newSweepCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildService wires the registry, checker and curve service from env config
func buildService() (*app.CurveService, *distributions.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	registry := distributions.NewRegistry()
	checker := validation.NewChecker(registry)
	return app.NewCurveService(registry, checker, cfg), registry, nil
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered distribution families",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := buildService()
			if err != nil {
				return err
			}
			return printJSON(registry.Types())
		},
	}
}

func newMetadataCmd() *cobra.Command {
	var currentValue float64

	cmd := &cobra.Command{
		Use:   "metadata [type]",
		Short: "Show the self-description of one family, or of all families",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := buildService()
			if err != nil {
				return err
			}
			var cv *float64
			if cmd.Flags().Changed("current-value") {
				cv = &currentValue
			}
			if len(args) == 0 {
				return printJSON(registry.AllMetadata())
			}
			meta, ok := registry.Metadata(args[0], cv)
			if !ok {
				return fmt.Errorf("unknown distribution type %q", args[0])
			}
			return printJSON(meta)
		},
	}
	cmd.Flags().Float64Var(&currentValue, "current-value", 0, "bias parameter defaults toward this value")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "validate [type]",
		Short: "Validate distribution parameters",
		Long: `Validate parameters against a distribution family.

Example: distkit validate weibull --param scale=8 --param shape=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := buildService()
			if err != nil {
				return err
			}
			d, ok := registry.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown distribution type %q", args[0])
			}
			parsed, err := parseParams(params)
			if err != nil {
				return err
			}
			return printJSON(d.Validate(parsed))
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter as name=value (repeatable)")
	return cmd
}

func newCurveCmd() *cobra.Command {
	var (
		params      []string
		kind        string
		percentiles []float64
		primary     float64
	)

	cmd := &cobra.Command{
		Use:   "curve [type]",
		Short: "Generate a plottable curve with percentile bands",
		Long: `Generate a PDF or CDF curve for a distribution, including percentile
points, key plot markers and organized percentile bands.

Example: distkit curve normal --param value=200 --param stdDev=10 --kind pdf --percentiles 10,50,90`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, _, err := buildService()
			if err != nil {
				return err
			}
			parsed, err := parseParams(params)
			if err != nil {
				return err
			}
			req := app.CurveRequest{Kind: kind, PrimaryPercentile: primary}
			for _, p := range percentiles {
				req.Percentiles = append(req.Percentiles, dist.PercentileRequest{Value: p})
			}
			spec := dist.Spec{Type: args[0], Parameters: parsed}
			result, err := service.GenerateCurve(context.Background(), spec, req)
			if err != nil {
				return err
			}
			if !result.Validation.IsValid {
				log.Warn().Strs("messages", result.Validation.Messages).Msg("validation failed")
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter as name=value (repeatable)")
	cmd.Flags().StringVar(&kind, "kind", "", "curve kind: pdf or cdf (default: family preference)")
	cmd.Flags().Float64SliceVar(&percentiles, "percentiles", nil, "percentiles to mark (0-100)")
	cmd.Flags().Float64Var(&primary, "primary", 0, "primary percentile for band organization")
	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		file    string
		kind    string
		primary float64
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Generate curves for a batch of specs from a JSON file or stdin",
		Long: `Read an array of distribution specs as JSON and generate curves for all
of them concurrently.

Example: distkit sweep --file scenario.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, _, err := buildService()
			if err != nil {
				return err
			}
			specs, err := readSpecs(file)
			if err != nil {
				return err
			}
			log.Debug().Int("specs", len(specs)).Msg("starting sweep")
			result, err := service.Sweep(context.Background(), app.SweepRequest{
				Specs: specs,
				Curve: app.CurveRequest{Kind: kind, PrimaryPercentile: primary},
			})
			if err != nil {
				return err
			}
			log.Info().Str("run_id", string(result.RunID)).Int64("runtime_ms", result.RuntimeMs).Msg("sweep complete")
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&file, "file", "-", "path to a JSON array of specs, or - for stdin")
	cmd.Flags().StringVar(&kind, "kind", "", "curve kind: pdf or cdf (default: family preference)")
	cmd.Flags().Float64Var(&primary, "primary", 0, "primary percentile for band organization")
	return cmd
}

// parseParams turns repeated name=value flags into a parameter map
func parseParams(raw []string) (dist.Params, error) {
	params := dist.Params{}
	for _, entry := range raw {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("invalid --param %q: expected name=value", entry)
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --param %q: %v", entry, err)
		}
		params[strings.TrimSpace(name)] = parsed
	}
	return params, nil
}

// readSpecs loads a JSON array of specs from a file or stdin
func readSpecs(path string) ([]dist.Spec, error) {
	var reader io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}
	var specs []dist.Spec
	if err := json.NewDecoder(reader).Decode(&specs); err != nil {
		return nil, fmt.Errorf("decoding specs: %v", err)
	}
	return specs, nil
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
