package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrianhalim/laundrytui/laundry"
)

const suggestionTimeout = 15 * time.Second

// SuggestionProvider defines the interface for AI-powered package suggestions.
type SuggestionProvider interface {
	// SuggestPackage returns the best-fitting package for the described
	// laundry item, with a confidence score (0-100).
	SuggestPackage(
		ctx context.Context,
		item string,
		packages []laundry.Package,
	) (*PackageSuggestion, error)
}

// PackageSuggestion represents an AI suggestion for a service package.
type PackageSuggestion struct {
	PackageID   string  `json:"package_id"`
	PackageName string  `json:"package_name"`
	Confidence  float64 `json:"confidence"` // 0-100 confidence score
	Reasoning   string  `json:"reasoning"`  // Why this package was suggested
}

// PackageSuggester manages AI-powered package suggestions.
type PackageSuggester struct {
	provider SuggestionProvider
	enabled  bool
}

// NewPackageSuggester creates a new suggester with the given provider.
func NewPackageSuggester(provider SuggestionProvider) *PackageSuggester {
	return &PackageSuggester{
		provider: provider,
		enabled:  provider != nil,
	}
}

// IsEnabled returns true if suggestions are available.
func (s *PackageSuggester) IsEnabled() bool {
	return s.enabled
}

// Suggest asks the provider for the best-fitting package.
func (s *PackageSuggester) Suggest(
	ctx context.Context,
	item string,
	packages []laundry.Package,
) (*PackageSuggestion, error) {
	if !s.enabled {
		return nil, errors.New("no suggestion provider configured")
	}

	return s.provider.SuggestPackage(ctx, item, packages)
}

// suggestionContext bounds how long a suggestion request may take.
func suggestionContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, suggestionTimeout)
}

// formatItemForAI formats the laundry item description for analysis.
func formatItemForAI(item string) string {
	return fmt.Sprintf("Laundry Item:\n- %s", strings.TrimSpace(item))
}

// formatPackagesForAI formats the package catalog for analysis.
func formatPackagesForAI(packages []laundry.Package) string {
	var sb strings.Builder
	sb.WriteString("Available Packages:\n")
	for _, pkg := range packages {
		fmt.Fprintf(&sb, "- ID: %s, Name: %s, Unit Price: %s, Type: %s\n",
			pkg.ID, pkg.Name, laundry.Rupiah(pkg.Price), pkg.Type)
	}
	return sb.String()
}
