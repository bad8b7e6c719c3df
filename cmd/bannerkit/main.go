package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/montge/bannerkit/cmd/bannerkit/commands"
	"github.com/montge/bannerkit/config"
	"github.com/montge/bannerkit/logger"
)

var rootCmd = &cobra.Command{
	Use:   "bannerkit",
	Short: "bannerkit - classification banner marking parser",
	Long: `bannerkit decodes security classification banner markings into structured
controls and reconstructs canonical banner strings from them.

Available commands:
  parse   - Decode a banner marking line
  vocab   - List the control vocabularies
  version - Show version information

Examples:
  bannerkit parse 'TOP SECRET//SI-TK ALFA BRAVO//NOFORN/ORCON'
  bannerkit parse --json 'SECRET//SAR-BP/GB'
  bannerkit vocab dissem`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Initialize(cfg.Parse.JSONLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.VocabCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
