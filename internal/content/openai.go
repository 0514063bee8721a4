package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aaronzipp/imposter-party/internal/models"
)

// OpenAIConfig configures the chat-completions endpoint and HTTP
// behavior for the OpenAI-compatible provider.
type OpenAIConfig struct {
	CompletionsURL string
	APIKey         string
	Model          string
	HTTPClient     *http.Client
}

type openAIProvider struct {
	cfg OpenAIConfig
}

// NewOpenAIProvider builds a Provider backed by an OpenAI-compatible
// chat-completions API.
func NewOpenAIProvider(cfg OpenAIConfig) Provider {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.CompletionsURL) == "" {
		cfg.CompletionsURL = "https://api.openai.com/v1/chat/completions"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &openAIProvider{cfg: cfg}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *openAIProvider) RequestRound(ctx context.Context, req Request) (models.RoundContent, error) {
	payload := chatRequest{
		Model: p.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(req)},
			{Role: "user", Content: "Generate a new game round."},
		},
	}
	payload.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(payload)
	if err != nil {
		return models.RoundContent{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.CompletionsURL, bytes.NewReader(body))
	if err != nil {
		return models.RoundContent{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	resp, err := p.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return models.RoundContent{}, fmt.Errorf("content request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.RoundContent{}, fmt.Errorf("content request: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return models.RoundContent{}, fmt.Errorf("decode response: %w", err)
	}
	if len(chat.Choices) == 0 || strings.TrimSpace(chat.Choices[0].Message.Content) == "" {
		return models.RoundContent{}, fmt.Errorf("empty response from provider")
	}

	var round models.RoundContent
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &round); err != nil {
		return models.RoundContent{}, fmt.Errorf("parse round payload: %w", err)
	}
	if strings.TrimSpace(round.SecretWord) == "" {
		return models.RoundContent{}, fmt.Errorf("round payload missing secret word")
	}
	return round, nil
}

// systemPrompt renders the game-master instructions for one round.
// Prompt wording is a provider-side concern; the caller has already
// fixed the category, band and style.
func systemPrompt(req Request) string {
	var hintInstruction string
	switch req.Band {
	case BandEasy:
		hintInstruction = "Create a hint that is vague but definitely connected. It should be easier to understand than a purely abstract concept, but still not an immediate giveaway."
	case BandHard:
		hintInstruction = "Create a hint that is EXTREMELY vague, abstract, and difficult."
	default:
		hintInstruction = fmt.Sprintf("Create a hint with a difficulty of %d/10 (where 1 is helpful/easy and 10 is extremely abstract). It should be moderately vague.", req.Difficulty)
	}

	var categoryNote string
	switch req.Category {
	case "Historical Events":
		categoryNote = "You may occasionally choose edgy or internet-culture relevant events in addition to standard history."
	case "People":
		categoryNote = "Choose very common celebrities or famous people."
	}

	recent, _ := json.Marshal(req.RecentWords)

	var b strings.Builder
	b.WriteString("You are a game master for the party game 'Imposter' (similar to Spyfall).\n")
	b.WriteString("Your goal is to generate a secret word, its category, and a hint based on the selected category.\n\n")
	fmt.Fprintf(&b, "Target Category: %s\n", req.Category)
	fmt.Fprintf(&b, "Target Style: %s\n\n", req.Style)
	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "1. Generate a secret word/concept specifically for the category: %q.\n", req.Category)
	fmt.Fprintf(&b, "2. %s\n", hintInstruction)
	b.WriteString("3. The hint MUST be exactly 1 or 2 words long. Do not use more than 2 words.\n")
	if categoryNote != "" {
		fmt.Fprintf(&b, "4. %s\n", categoryNote)
	}
	fmt.Fprintf(&b, "5. CRITICAL: Ensure the secret word is NOT in this list of previously used words for this category: %s.\n", recent)
	b.WriteString(`6. Return ONLY a JSON object with the keys "secretWord", "category" and "hint".`)
	return b.String()
}
