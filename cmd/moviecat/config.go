package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	configCmd.AddCommand(configTestCmd)
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
	initCmd.Flags().String("catalog", "", "Path to the JSON movie store")
	initCmd.Flags().String("stats-url", "", "Statistics source URL (empty disables statistics)")
	initCmd.Flags().Int("port", 0, "Server port")
}

// runInit writes the commented template, or a concrete config when any
// setting flag is given.
func runInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	flags := cmd.Flags()
	if !flags.Changed("catalog") && !flags.Changed("stats-url") && !flags.Changed("port") {
		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}

	cfg := config.Default()
	if flags.Changed("catalog") {
		cfg.Catalog.Path, _ = flags.GetString("catalog")
	}
	if flags.Changed("stats-url") {
		cfg.Stats.URL, _ = flags.GetString("stats-url")
	}
	if flags.Changed("port") {
		cfg.Server.Port, _ = flags.GetInt("port")
	}

	if err := cfg.Write(path); err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(cmd.OutOrStdout(), configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	var explicit string
	if len(args) > 0 {
		explicit = args[0]
	}
	path, err := config.Resolve(explicit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			// Show what was read so the errors have context
			if partial, perr := config.LoadWithoutValidation(path); perr == nil {
				printConfigSummary(out, partial)
			}
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s:%d (log: %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.LogLevel)
	fmt.Fprintf(w, "  Catalog:    %s\n", cfg.Catalog.Path)
	if cfg.Stats.URL == "" {
		fmt.Fprintln(w, "  Statistics: disabled")
		return
	}
	fmt.Fprintf(w, "  Statistics: %s (ttl %s, timeout %s)\n", cfg.Stats.URL, cfg.Stats.TTL, cfg.Stats.Timeout)
	if cfg.Stats.WarmInterval > 0 {
		fmt.Fprintf(w, "  Warm every: %s\n", cfg.Stats.WarmInterval)
	}
}
