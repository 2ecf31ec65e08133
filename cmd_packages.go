package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adrianhalim/laundrytui/laundry"
)

// packagesCmd represents the packages command.
var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Service package commands",
	Long:  `Commands for viewing the shop's service package catalog.`,
}

// packagesListCmd represents the packages list command.
var packagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all service packages",
	Long:  `List every service package with its ID, unit price, and type.`,
	RunE:  packagesListRun,
}

// packagesSuggestCmd represents the packages suggest command.
var packagesSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a package for a laundry item",
	Long: `Suggest the best-fitting service package for a described laundry item.
Requires an Anthropic API key (--anthropic-api-key flag, ANTHROPIC_API_KEY
environment variable, or config file).`,
	RunE: packagesSuggestRun,
}

func init() {
	packagesCmd.AddCommand(packagesListCmd)
	packagesCmd.AddCommand(packagesSuggestCmd)

	packagesListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	packagesSuggestCmd.Flags().String("item", "", "Description of the laundry item, e.g. '3kg of shirts, needed tomorrow' (required)")
	_ = packagesSuggestCmd.MarkFlagRequired("item")
}

func packagesListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	packages := store.Packages()

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(packages)
	case tableOutputFormat:
		t := createStyledTable("ID", "NAME", "UNIT PRICE", "TYPE")
		for _, p := range packages {
			t.Row(p.ID, p.Name, laundry.Rupiah(p.Price), p.Type)
		}
		fmt.Println(t)
		return nil
	default:
		return errors.New("unsupported output format")
	}
}

func packagesSuggestRun(cmd *cobra.Command, _ []string) error {
	if cfg.AnthropicAPIKey == "" {
		return errors.New("an Anthropic API key is required for suggestions " +
			"(set via --anthropic-api-key flag, ANTHROPIC_API_KEY environment variable, or config file)")
	}

	item, _ := cmd.Flags().GetString("item")
	if strings.TrimSpace(item) == "" {
		return errors.New("item description must not be empty")
	}

	suggester := NewPackageSuggester(NewAnthropicProvider(cfg.AnthropicAPIKey))

	ctx, cancel := suggestionContext(cmd.Context())
	defer cancel()

	suggestion, err := suggester.Suggest(ctx, item, store.Packages())
	if err != nil {
		return fmt.Errorf("failed to get suggestion: %w", err)
	}

	t := createStyledTable("PACKAGE", "CONFIDENCE", "REASONING")
	t.Row(suggestion.PackageName, fmt.Sprintf("%.0f%%", suggestion.Confidence), suggestion.Reasoning)
	fmt.Println(t)

	return nil
}
