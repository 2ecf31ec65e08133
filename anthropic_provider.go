package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/log"

	"github.com/adrianhalim/laundrytui/laundry"
)

const (
	anthropicMaxTokens = 300
	maxConfidenceScore = 100
)

// AnthropicProvider implements SuggestionProvider for Anthropic's Claude API.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates a new Anthropic suggestion provider.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client: &client,
	}
}

// SuggestPackage implements SuggestionProvider interface.
func (p *AnthropicProvider) SuggestPackage(
	ctx context.Context,
	item string,
	packages []laundry.Package,
) (*PackageSuggestion, error) {
	prompt := p.buildPrompt(item, packages)

	log.Debug("sending suggestion request to Anthropic", "item", item)

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     "claude-3-haiku-20240307", // Use faster, cheaper model for suggestions
		MaxTokens: anthropicMaxTokens,        // Keep response short and focused
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Error("failed to call Anthropic API", "error", err)
		return nil, fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	// Extract text from response
	var responseText string
	if len(response.Content) > 0 {
		responseText = response.Content[0].Text
	}

	if responseText == "" {
		return nil, errors.New("empty response from Anthropic API")
	}

	suggestion, err := p.parseResponse(responseText, packages)
	if err != nil {
		log.Error("failed to parse Anthropic response", "error", err, "response", responseText)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	log.Debug("received package suggestion",
		"package_id", suggestion.PackageID,
		"confidence", suggestion.Confidence)
	return suggestion, nil
}

// buildPrompt constructs the prompt for a package suggestion.
func (p *AnthropicProvider) buildPrompt(item string, packages []laundry.Package) string {
	itemInfo := formatItemForAI(item)
	packagesInfo := formatPackagesForAI(packages)

	return fmt.Sprintf(`You are a laundry shop assistant.
Please analyze the following laundry item and recommend the most appropriate service package from the available options.

%s

%s

Please respond with ONLY a JSON object in this exact format:
{
  "package_id": "<id>",
  "confidence": <number between 0-100>,
  "reasoning": "<brief explanation>"
}

Guidelines:
- Choose the package that best matches the item based on its kind, weight, and urgency
- A "kiloan" package is priced per kilo; a "satuan" package is priced per piece
- Confidence should reflect how certain you are (100 = very certain, 50 = moderate, 0 = just guessing)
- Keep reasoning brief (1-2 sentences max)
- If no package seems appropriate, choose the closest match and set confidence low`, itemInfo, packagesInfo)
}

// parseResponse parses the AI response and extracts the suggestion.
func (p *AnthropicProvider) parseResponse(response string, packages []laundry.Package) (*PackageSuggestion, error) {
	// Clean up the response - remove any markdown formatting or extra text
	response = strings.TrimSpace(response)

	// Find JSON content between braces
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")

	if start == -1 || end == -1 {
		return nil, fmt.Errorf("no JSON found in response: %s", response)
	}

	jsonStr := response[start : end+1]

	var result struct {
		PackageID  string  `json:"package_id"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w (original: %s)", err, jsonStr)
	}

	// Find the package name
	var packageName string
	for _, pkg := range packages {
		if pkg.ID == result.PackageID {
			packageName = pkg.Name
			break
		}
	}

	if packageName == "" {
		return nil, fmt.Errorf("suggested package ID %s not found in the catalog", result.PackageID)
	}

	// Clamp confidence to 0-100 range
	if result.Confidence < 0 {
		result.Confidence = 0
	} else if result.Confidence > maxConfidenceScore {
		result.Confidence = maxConfidenceScore
	}

	return &PackageSuggestion{
		PackageID:   result.PackageID,
		PackageName: packageName,
		Confidence:  result.Confidence,
		Reasoning:   result.Reasoning,
	}, nil
}
