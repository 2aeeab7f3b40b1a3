package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	model      = "claude-3-haiku-20240307"
	maxTokens  = 1024
)

// Client defines the AI field-note parsing boundary. Output is a suggestion
// for the keeper to review, never a committed record.
type Client interface {
	ParseFieldNotes(ctx context.Context, rawNotes string) (ParsedEntry, error)
}

// ParsedEntry is the structured partial journal entry the model extracts
// from rough field notes. Field names mirror the journal entry schema.
type ParsedEntry struct {
	Weather struct {
		Temperature float64 `json:"temperature"`
		Condition   string  `json:"condition"`
		Wind        string  `json:"wind"`
	} `json:"weather"`
	Phenology      string `json:"phenology"`
	Narrative      string `json:"narrative"`
	TechnicalNotes struct {
		ClusterSize   string   `json:"clusterSize"`
		QueenStatus   string   `json:"queenStatus"`
		Interventions []string `json:"interventions"`
		Diseases      []string `json:"diseases"`
	} `json:"technicalNotes"`
	Tags []string `json:"tags"`
}

type anthropicClient struct {
	httpClient *resty.Client
	now        func() time.Time
}

// NewClient creates a configured Anthropic client.
func NewClient(apiKey string) Client {
	client := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)

	return &anthropicClient{httpClient: client, now: time.Now}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *anthropicClient) ParseFieldNotes(ctx context.Context, rawNotes string) (ParsedEntry, error) {
	systemPrompt := fmt.Sprintf(`You are the Pomeroy Bee Yard Naturalist AI.
	Your task is to take rough beekeeping field notes and convert them into a structured JSON log entry.

	The narrative tone should be: warm, scholarly, and observant ("Modern Naturalist").
	Use high-level English suitable for a field journal.

	Current Date Context: %s
	Location: San Francisco, Coastal Dunes (Pomeroy Center).

	RULES:
	- Output ONLY a JSON object with this exact structure:
	  {
		"weather": {"temperature": (number, Fahrenheit), "condition": (string, e.g. "Foggy"), "wind": (string, speed and direction)},
		"phenology": (string, local flora in bloom or nature observations),
		"narrative": (string, the polished naturalist narrative of the visit),
		"technicalNotes": {
			"clusterSize": (string, e.g. "basketball"),
			"queenStatus": "Queenright" or "Queenless" or "Virgin" or "Unknown",
			"interventions": (array of strings, actions taken),
			"diseases": (array of strings, disease or pest signs observed)
		},
		"tags": (array of strings, names of people mentioned or needing review)
	  }
	- Escape newlines inside string values (use \n). Do not emit real line breaks inside a string.
	- If the notes do not mention a field, use a sensible empty value ("" or []), never invent observations.
	`, c.now().Format("January 2, 2006"))

	reqBody := messageRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []message{
			{Role: "user", Content: fmt.Sprintf("Raw Notes:\n%q", rawNotes)},
			// Prefill the assistant response to force JSON output.
			{Role: "assistant", Content: "{"},
		},
	}

	var respBody messageResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(apiURL)

	if err != nil {
		return ParsedEntry{}, fmt.Errorf("anthropic api call: %w", err)
	}
	if resp.IsError() {
		return ParsedEntry{}, fmt.Errorf("anthropic api error: %s", resp.String())
	}
	if len(respBody.Content) == 0 {
		return ParsedEntry{}, fmt.Errorf("empty response from ai")
	}

	// Reconstruct the full JSON since we prefilled the opening brace.
	responseText := cleanJSON("{" + respBody.Content[0].Text)

	var parsed ParsedEntry
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		return ParsedEntry{}, fmt.Errorf("failed to unmarshal ai response: %w", err)
	}

	return parsed, nil
}

// cleanJSON strips markdown code fences Claude occasionally wraps around the
// payload despite the prefill.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
