package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/logger"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// SummarizeCompatibility writes a one or two sentence pitch for why two builders should team up.
// API failures fall back to a summary built from the score reasons.
func (c *GeminiClient) SummarizeCompatibility(ctx context.Context, a, b *domain.User, result *domain.CompatibilityResult) (string, error) {
	prompt := fmt.Sprintf(`
		Two people on a platform for sharing ideas and building projects are considering working together.
		Person A: skills %v, roles %v, interests %v, %.0f hours per week
		Person B: skills %v, roles %v, interests %v, %.0f hours per week
		Compatibility score: %d/100 (%s). Reasons: %s

		Task: Write a short, encouraging summary (1-2 sentences) addressed to person A about collaborating with person B.
		Mention what they share and what each brings that the other lacks.
		Output: Just the summary text.
	`,
		a.Skills, a.PreferredRoles, a.Interests, a.AvailabilityHours,
		b.Skills, b.PreferredRoles, b.Interests, b.AvailabilityHours,
		result.Score, result.Label, strings.Join(result.Reasons, "; "),
	)

	text, err := c.generate(ctx, prompt)
	if err != nil || text == "" {
		logger.Warning("gemini unavailable, using fallback compatibility summary: %v", err)
		return fallbackSummary(b, result), nil
	}
	return text, nil
}

func fallbackSummary(b *domain.User, result *domain.CompatibilityResult) string {
	name := b.DisplayName
	if name == "" {
		name = b.Username
	}
	if len(result.Reasons) == 0 {
		return fmt.Sprintf("%s with %s: fill in more of your profiles to see what you have in common.", result.Label, name)
	}
	return fmt.Sprintf("%s with %s. %s.", result.Label, name, result.Reasons[0])
}

// GenerateBio drafts three profile bios in different tones.
func (c *GeminiClient) GenerateBio(ctx context.Context, displayName string, skills, interests []string) (map[string]string, error) {
	prompt := fmt.Sprintf(`
		Write three short profile bios (max 200 characters each) for a builder on a project collaboration platform.
		Name: %s
		Skills: %v
		Interests: %v

		Output: JSON object with keys "professional", "friendly" and "bold". Example: {"professional": "...", "friendly": "...", "bold": "..."}
	`, displayName, skills, interests)

	responseText, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Clean up markdown code blocks if present
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var bios map[string]string
	if err := json.Unmarshal([]byte(strings.TrimSpace(responseText)), &bios); err != nil {
		return nil, fmt.Errorf("failed to parse bios: %w", err)
	}
	return bios, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
