package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taxtrace-ai/taxtrace-go/internal/config"
	"github.com/taxtrace-ai/taxtrace-go/internal/output"
)

var (
	configValidate bool
	configFormat   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate taxtrace configuration",
	Long: `Display the effective configuration after merging defaults with the
config file.

Examples:
    taxtrace config                     # Show current config
    taxtrace config --validate          # Check config validity
    taxtrace config --format yaml       # Output as YAML`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configValidate, "validate", false, "validate configuration and check paths")
	configCmd.Flags().StringVar(&configFormat, "format", "terminal", "output format: terminal, yaml, json")

	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	if noColor {
		output.DisableColor()
	}

	cfg, cwd, err := loadConfig()
	if err != nil {
		return err
	}

	if configValidate {
		return validateConfig(cmd, cfg, cwd)
	}
	return displayConfig(cmd, cfg, cwd)
}

func validateConfig(cmd *cobra.Command, cfg *config.Config, cwd string) error {
	width := 80
	cmd.Println(output.Header("Configuration Validation", width))
	cmd.Println()

	var errs []string
	var warnings []string

	configPath, err := config.FindConfig(cwd)
	if err != nil {
		warnings = append(warnings, "Config file not found (using defaults)")
	} else {
		cmd.Printf("  %s Config file: %s\n", output.Color("[PASS]", output.Green), configPath)
	}

	retPath := returnFile
	if retPath == "" {
		retPath = cfg.ReturnPath(cwd)
	}
	if _, err := os.Stat(retPath); os.IsNotExist(err) {
		errs = append(errs, fmt.Sprintf("Return file not found: %s", retPath))
	} else {
		cmd.Printf("  %s Return file: %s\n", output.Color("[PASS]", output.Green), retPath)
	}

	if cfg.Taxtrace.Year < 2000 || cfg.Taxtrace.Year > 2100 {
		errs = append(errs, fmt.Sprintf("Implausible tax year: %d", cfg.Taxtrace.Year))
	}
	if cfg.Taxtrace.Display.MaxLabelWidth < 10 {
		warnings = append(warnings, fmt.Sprintf("Very narrow max_label_width: %d", cfg.Taxtrace.Display.MaxLabelWidth))
	}

	cmd.Println()
	for _, w := range warnings {
		cmd.Printf("  %s %s\n", output.Color("[WARN]", output.Yellow), w)
	}
	for _, e := range errs {
		cmd.Printf("  %s %s\n", output.Color("[FAIL]", output.Red), e)
	}

	if len(errs) > 0 {
		return NewExitError(1, fmt.Sprintf("%d configuration error(s)", len(errs)))
	}
	cmd.Println("Configuration is valid.")
	return nil
}

func displayConfig(cmd *cobra.Command, cfg *config.Config, cwd string) error {
	switch configFormat {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to serialize config: %w", err)
		}
		cmd.Print(string(data))
		return nil
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize config: %w", err)
		}
		cmd.Println(string(data))
		return nil
	case "terminal":
		// fallthrough to table view below
	default:
		return fmt.Errorf("unknown format: %s", configFormat)
	}

	width := 80
	cmd.Println(output.Header("taxtrace Configuration", width))
	cmd.Println()
	cmd.Printf("  Return file:      %s\n", cfg.ReturnPath(cwd))
	cmd.Printf("  Tax year:         %d\n", cfg.Taxtrace.Year)
	cmd.Printf("  Color output:     %t\n", cfg.Taxtrace.Display.Color)
	cmd.Printf("  Max label width:  %d\n", cfg.Taxtrace.Display.MaxLabelWidth)
	if len(cfg.Taxtrace.Labels) > 0 {
		cmd.Printf("  Label overrides:  %d\n", len(cfg.Taxtrace.Labels))
	}
	return nil
}
