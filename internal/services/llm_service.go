package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// ErrExtractionDisabled is returned when no model is configured.
var ErrExtractionDisabled = errors.New("job extraction is not configured")

const maxPostingLength = 20000

const jobExtractionPrompt = `
You are a Job Data Extraction Agent. Analyze the raw HTML/Text of a job posting and extract the fields below.

### INSTRUCTIONS:
1. Ignore navigation menus, footers, "similar jobs" lists and advertisements.
2. Output valid JSON only. Do not wrap the output in markdown code blocks.
3. If a field is missing, use an empty string. Do not guess.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Senior Backend Engineer)",
    "company": "Name of the company",
    "location": "Job location or 'Remote'",
    "notes": "Two or three sentences summarising responsibilities and requirements"
}

### RAW CONTENT:
%s
`

type LLMService struct {
	Client llms.Model
}

// NewLLMService connects to Gemini. It returns nil without error when apiKey is empty,
// which leaves extraction disabled.
func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	if apiKey == "" {
		return nil, nil
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &LLMService{
		Client: llm,
	}, nil
}

// ExtractJobDetails turns a pasted posting into a draft for the create form.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML, sourceURL string) (*dtos.JobDraft, error) {
	if s == nil || s.Client == nil {
		return nil, ErrExtractionDisabled
	}

	if len(rawHTML) > maxPostingLength {
		rawHTML = rawHTML[:maxPostingLength]
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(jobExtractionPrompt, rawHTML))
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	var draft dtos.JobDraft
	if err := json.Unmarshal([]byte(stripCodeFence(resp)), &draft); err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}

	draft.Title = strings.TrimSpace(draft.Title)
	draft.Company = strings.TrimSpace(draft.Company)
	draft.Location = strings.TrimSpace(draft.Location)
	draft.Notes = strings.TrimSpace(draft.Notes)
	draft.Link = models.NormalizeLink(sourceURL)
	return &draft, nil
}

// stripCodeFence removes a ```json fence some models add despite the prompt.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
