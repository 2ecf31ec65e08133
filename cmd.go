package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adrianhalim/laundrytui/config"
	"github.com/adrianhalim/laundrytui/laundry"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile      string
	debug        bool
	dataFile     string
	anthropicKey string
	cfg          config.Config
	store        *laundry.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "laundrytui",
	Short: "A terminal UI and CLI for running a laundry shop",
	Long:  `A terminal-based interface and CLI for managing a laundry shop's customers, service packages, and transactions.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg.Debug = debug
		cfg.DataFile = dataFile
		cfg.AnthropicAPIKey = anthropicKey

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		// Open the store
		var err error
		store, err = laundry.Open(cfg.DataFile)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), cfg, store)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.laundrytui.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "", "JSON file to persist the store to (defaults to in-memory)")
	rootCmd.PersistentFlags().StringVar(&anthropicKey, "anthropic-api-key", "", "API key for the package suggestion command")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("data-file"))
	_ = viper.BindPFlag("anthropic_api_key", rootCmd.PersistentFlags().Lookup("anthropic-api-key"))

	// Bind environment variables
	_ = viper.BindEnv("data_file", "LAUNDRYTUI_DATA_FILE")
	_ = viper.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")

	// Add subcommands
	rootCmd.AddCommand(transactionCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(packagesCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error("Error finding home directory", "error", err)
			os.Exit(1)
		}

		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("laundrytui")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "laundrytui"))
		}

		// User home directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "laundrytui"))

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/laundrytui")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("data-file") {
		dataFile = viper.GetString("data_file")
	}
	if !rootCmd.PersistentFlags().Changed("anthropic-api-key") {
		anthropicKey = viper.GetString("anthropic_api_key")
	}

	// The color table nests under [colors]; re-read the file with the
	// TOML decoder to pick it up.
	if fileCfg, err := config.LoadFile(viper.ConfigFileUsed()); err == nil {
		cfg.Colors = fileCfg.Colors
	}
}

// Utility functions for output formatting.
func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != jsonOutputFormat && outputFormat != tableOutputFormat {
		return "", errors.New("output format must be 'table' or 'json'")
	}

	return outputFormat, nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
