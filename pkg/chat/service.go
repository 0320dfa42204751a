package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/snapjobs/snapjobs-back/pkg/models"
	"github.com/snapjobs/snapjobs-back/pkg/sjm"
)

// LLMClient abstracts the completion backend so tests can stub it.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Matcher runs talent searches against the matching API.
type Matcher interface {
	Do(ctx context.Context, endpoint, method string, params map[string]interface{}) (*sjm.ProxyResponse, error)
}

// matchRequestPattern spots messages that ask for an actual talent
// search rather than a question about the product.
var matchRequestPattern = regexp.MustCompile(`(?i)\b(find|hire|need|looking for)\b.*\b(freelancer|developer|designer|engineer|talent|candidate)s?\b`)

// intent is a recognised category of docs questions with a canned reply
type intent struct {
	name    string
	pattern *regexp.Regexp
	reply   string
	links   []string
}

// The fast path: common questions answered without burning LLM tokens.
var intents = []intent{
	{
		name:    "pricing",
		pattern: regexp.MustCompile(`(?i)\b(price|pricing|cost|plan|tier|upgrade|subscription)\b`),
		reply:   "SnapJobs offers three plans: Free ($0, 1 API key, 1,000 requests/month), Pro ($49/month, 3 API keys, 50,000 requests/month) and Enterprise ($199/month, 10 API keys, 1M requests/month). You can upgrade any time from your dashboard.",
		links:   []string{"/pricing", "/dashboard/billing"},
	},
	{
		name:    "api_keys",
		pattern: regexp.MustCompile(`(?i)\b(api.?key|credential|token|secret|regenerate|revoke)\b`),
		reply:   "API keys are managed from your dashboard. A key's value is shown exactly once, right after generation - store it securely. You can disable, re-enable or revoke keys at any time; your plan determines how many active keys you can hold.",
		links:   []string{"/dashboard/keys", "/docs/authentication"},
	},
	{
		name:    "matching",
		pattern: regexp.MustCompile(`(?i)\b(match|matching|talent|freelancer|candidate|skill.?verif|interview)\b`),
		reply:   "The matching API ranks freelancers against your project using skill, experience and availability signals. POST /match with your project description, or try /verify-skill and /interview for deeper screening. The playground lets you experiment without writing code.",
		links:   []string{"/docs/matching", "/playground"},
	},
	{
		name:    "status",
		pattern: regexp.MustCompile(`(?i)\b(status|uptime|down|outage|unavailable|maintenance)\b`),
		reply:   "Current and historical API availability is published on the status page, including 90 days of daily uptime.",
		links:   []string{"/status"},
	},
	{
		name:    "getting_started",
		pattern: regexp.MustCompile(`(?i)\b(start|begin|setup|quickstart|tutorial|first|hello)\b`),
		reply:   "To get started: create an account, generate an API key from the dashboard, then call the matching API with the X-API-Key header. The quickstart guide walks through your first match request in about five minutes.",
		links:   []string{"/docs/quickstart", "/dashboard/keys"},
	},
}

const systemPrompt = "You are the SnapJobs documentation assistant. SnapJobs is an AI-powered " +
	"freelancer matching API. Answer questions about the API, its plans (free, pro, enterprise), " +
	"API key management and integration, briefly and accurately. If you do not know, say so and " +
	"point the user at https://snapjobsai.com/docs."

// Service answers docs questions. Talent-search requests are dispatched
// to the matching API, known intents get canned answers, everything else
// falls through to the LLM when one is configured.
type Service struct {
	llm     LLMClient
	matcher Matcher
	model   string
}

// Option configures a Service.
type Option func(*Service)

// WithMatcher enables live talent searches from the assistant.
func WithMatcher(m Matcher) Option {
	return func(s *Service) {
		s.matcher = m
	}
}

// NewService creates a chat service. A nil llm disables the fallback;
// unmatched questions then get a pointer to the docs.
func NewService(llm LLMClient, opts ...Option) *Service {
	s := &Service{
		llm:   llm,
		model: openai.GPT3Dot5Turbo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewServiceWithKey builds the service around the OpenAI API. An empty
// key yields a service without LLM fallback.
func NewServiceWithKey(apiKey string, opts ...Option) *Service {
	if apiKey == "" {
		return NewService(nil, opts...)
	}
	return NewService(openai.NewClient(apiKey), opts...)
}

// Answer resolves a message to a reply and the intent that produced it
// ("match_request", a canned intent name, "llm" or "fallback").
func (s *Service) Answer(ctx context.Context, message string) (*models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("empty message")
	}

	if s.matcher != nil && matchRequestPattern.MatchString(message) {
		return s.answerMatch(ctx, message), nil
	}

	for _, in := range intents {
		if in.pattern.MatchString(message) {
			return &models.ChatResponse{
				Reply:  in.reply,
				Intent: in.name,
				Links:  in.links,
			}, nil
		}
	}

	if s.llm == nil {
		return &models.ChatResponse{
			Reply:  "I couldn't find an answer to that. Browse the documentation at https://snapjobsai.com/docs or reach out to support@snapjobsai.com.",
			Intent: "fallback",
			Links:  []string{"/docs"},
		}, nil
	}

	resp, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: 400,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return &models.ChatResponse{
		Reply:  resp.Choices[0].Message.Content,
		Intent: "llm",
	}, nil
}

// answerMatch extracts project parameters from the message and runs a
// live search. Upstream failures degrade to a pointer at the playground
// instead of an error; the assistant should never hard-fail a chat.
func (s *Service) answerMatch(ctx context.Context, message string) *models.ChatResponse {
	p := extractMatchParams(message)

	params := map[string]interface{}{
		"description": p.Description,
	}
	if len(p.Skills) > 0 {
		params["required_skills"] = p.Skills
	}
	if p.BudgetMax > 0 {
		params["budget_range"] = map[string]int{"min": p.BudgetMin, "max": p.BudgetMax}
	}
	if p.TimelineDays > 0 {
		params["timeline_days"] = p.TimelineDays
	}
	if p.Complexity != "" {
		params["complexity"] = p.Complexity
	}

	degraded := &models.ChatResponse{
		Reply:  "I couldn't run that search right now. You can try the same request yourself in the playground.",
		Intent: "match_request",
		Links:  []string{"/playground"},
	}

	resp, err := s.matcher.Do(ctx, "match", http.MethodPost, params)
	if err != nil || resp.Status != http.StatusOK {
		return degraded
	}

	matches := parseMatches(resp.Data)
	if len(matches) == 0 {
		return &models.ChatResponse{
			Reply:  "I ran the search but found no matching freelancers. Try loosening the skills or budget and ask again.",
			Intent: "match_request",
			Links:  []string{"/playground"},
		}
	}

	var b strings.Builder
	b.WriteString("Here are the top matches for your project:\n")
	for i, m := range matches {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "%d. %s (%.0f%% match)\n", i+1, m.Freelancer.Name, m.Score*100)
	}
	b.WriteString("Use the playground or the API to see full profiles.")

	return &models.ChatResponse{
		Reply:  b.String(),
		Intent: "match_request",
		Links:  []string{"/playground", "/docs/matching"},
	}
}

type matchResult struct {
	Score      float64 `json:"score"`
	Freelancer struct {
		Name string `json:"name"`
	} `json:"freelancer"`
}

// parseMatches accepts both response shapes the matching API has used:
// {matches: [...]} and {data: {matches: [...]}}.
func parseMatches(data json.RawMessage) []matchResult {
	var direct struct {
		Matches []matchResult `json:"matches"`
		Data    struct {
			Matches []matchResult `json:"matches"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &direct); err != nil {
		return nil
	}
	if len(direct.Matches) > 0 {
		return direct.Matches
	}
	return direct.Data.Matches
}
