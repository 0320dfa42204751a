package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapjobs/snapjobs-back/pkg/sjm"
)

type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

type stubMatcher struct {
	status int
	body   string
	err    error
	params map[string]interface{}
	calls  int
}

func (s *stubMatcher) Do(_ context.Context, endpoint, method string, params map[string]interface{}) (*sjm.ProxyResponse, error) {
	s.calls++
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return &sjm.ProxyResponse{
		Status:     s.status,
		StatusText: http.StatusText(s.status),
		Data:       json.RawMessage(s.body),
	}, nil
}

func TestAnswer_KnownIntents(t *testing.T) {
	llm := &stubLLM{reply: "should not be used"}
	svc := NewService(llm)

	tests := []struct {
		message string
		intent  string
	}{
		{"How much does the pro plan cost?", "pricing"},
		{"I lost my API key, can I see it again?", "api_keys"},
		{"How do I match freelancers to my project?", "matching"},
		{"Is the API down right now?", "status"},
		{"Where do I start?", "getting_started"},
	}

	for _, tt := range tests {
		t.Run(tt.intent, func(t *testing.T) {
			resp, err := svc.Answer(context.Background(), tt.message)
			require.NoError(t, err)
			assert.Equal(t, tt.intent, resp.Intent)
			assert.NotEmpty(t, resp.Reply)
			assert.NotEmpty(t, resp.Links)
		})
	}

	// Canned intents never reach the LLM
	assert.Zero(t, llm.calls)
}

func TestAnswer_MatchRequestDispatches(t *testing.T) {
	matcher := &stubMatcher{
		status: http.StatusOK,
		body:   `{"matches":[{"score":0.91,"freelancer":{"name":"Ada Perez"}},{"score":0.84,"freelancer":{"name":"Lin Wu"}}]}`,
	}
	svc := NewService(nil, WithMatcher(matcher))

	resp, err := svc.Answer(context.Background(),
		"I need a freelancer with React, Node and a budget of $5k in 2 weeks")
	require.NoError(t, err)

	assert.Equal(t, "match_request", resp.Intent)
	assert.Contains(t, resp.Reply, "Ada Perez")
	assert.Contains(t, resp.Reply, "91% match")
	assert.Equal(t, 1, matcher.calls)

	assert.Equal(t, []string{"React", "Node"}, matcher.params["required_skills"])
	assert.Equal(t, map[string]int{"min": 0, "max": 5000}, matcher.params["budget_range"])
	assert.Equal(t, 14, matcher.params["timeline_days"])
}

func TestAnswer_MatchRequestNestedResponseShape(t *testing.T) {
	matcher := &stubMatcher{
		status: http.StatusOK,
		body:   `{"data":{"matches":[{"score":0.7,"freelancer":{"name":"Sam Cole"}}]}}`,
	}
	svc := NewService(nil, WithMatcher(matcher))

	resp, err := svc.Answer(context.Background(), "find me a backend developer")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Sam Cole")
}

func TestAnswer_MatchRequestUpstreamFailureDegrades(t *testing.T) {
	matcher := &stubMatcher{err: errors.New("connection refused")}
	svc := NewService(nil, WithMatcher(matcher))

	resp, err := svc.Answer(context.Background(), "find me a rust developer")
	require.NoError(t, err)
	assert.Equal(t, "match_request", resp.Intent)
	assert.Contains(t, resp.Reply, "playground")
}

func TestAnswer_MatchRequestNoMatches(t *testing.T) {
	matcher := &stubMatcher{status: http.StatusOK, body: `{"matches":[]}`}
	svc := NewService(nil, WithMatcher(matcher))

	resp, err := svc.Answer(context.Background(), "looking for a COBOL developer")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "no matching freelancers")
}

func TestAnswer_NoMatcherFallsBackToCannedIntent(t *testing.T) {
	svc := NewService(nil)

	// Without a matcher, a search request still gets the matching docs answer
	resp, err := svc.Answer(context.Background(), "find me a react freelancer")
	require.NoError(t, err)
	assert.Equal(t, "matching", resp.Intent)
}

func TestAnswer_FallsThroughToLLM(t *testing.T) {
	llm := &stubLLM{reply: "Here is a detailed answer."}
	svc := NewService(llm)

	resp, err := svc.Answer(context.Background(), "Explain websocket reconnection semantics")
	require.NoError(t, err)
	assert.Equal(t, "llm", resp.Intent)
	assert.Equal(t, "Here is a detailed answer.", resp.Reply)
	assert.Equal(t, 1, llm.calls)
}

func TestAnswer_NoLLMConfigured(t *testing.T) {
	svc := NewService(nil)

	resp, err := svc.Answer(context.Background(), "Explain websocket reconnection semantics")
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Intent)
	assert.Contains(t, resp.Reply, "docs")
}

func TestAnswer_LLMError(t *testing.T) {
	svc := NewService(&stubLLM{err: errors.New("rate limited")})

	_, err := svc.Answer(context.Background(), "Explain websocket reconnection semantics")
	assert.Error(t, err)
}

func TestAnswer_EmptyMessage(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Answer(context.Background(), "   ")
	assert.Error(t, err)
}

func TestExtractMatchParams(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    MatchParams
	}{
		{
			"skills list",
			"skills: [React, Node, Go]",
			MatchParams{Skills: []string{"React", "Node", "Go"}},
		},
		{
			"budget range with k suffix",
			"budget $5k to $10k",
			MatchParams{BudgetMin: 5000, BudgetMax: 10000},
		},
		{
			"single budget",
			"budget of $3000",
			MatchParams{BudgetMax: 3000},
		},
		{
			"weeks to days",
			"ship it in 3 weeks",
			MatchParams{TimelineDays: 21},
		},
		{
			"months to days",
			"timeline is 2 months",
			MatchParams{TimelineDays: 60},
		},
		{
			"complexity",
			"complexity: high",
			MatchParams{Complexity: "high"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractMatchParams(tt.message)
			got.Description = ""
			assert.Equal(t, tt.want, got)
		})
	}
}
