package markettrends

import (
	"context"
	"errors"
	"testing"
	"time"

	markettrendserrors "go-apg/internal/markettrends/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	CompleteFn func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	calls      int
}

func (f *fakeLLM) Provider() string { return "fake" }

func (f *fakeLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	return f.CompleteFn(ctx, systemPrompt, userPrompt)
}

func validTrendsRequest() TrendsRequest {
	return TrendsRequest{Role: "Data engineer", ResourceType: "Freelancer", Currency: "CAD"}
}

func TestService_Analyze_Validation(t *testing.T) {
	svc := NewService(&fakeLLM{}, nil, 0)
	ctx := context.Background()

	cases := []struct {
		name string
		req  TrendsRequest
		want error
	}{
		{"missing role", TrendsRequest{ResourceType: "Employee", Currency: "CAD"}, markettrendserrors.ErrRoleRequired},
		{"blank resource type", TrendsRequest{Role: "Dev", ResourceType: "  ", Currency: "CAD"}, markettrendserrors.ErrResourceTypeRequired},
		{"missing currency", TrendsRequest{Role: "Dev", ResourceType: "Employee"}, markettrendserrors.ErrCurrencyRequired},
		{"unknown resource type", TrendsRequest{Role: "Dev", ResourceType: "Contractor", Currency: "CAD"}, markettrendserrors.ErrInvalidResourceType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Analyze(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_Analyze_NotConfigured(t *testing.T) {
	svc := NewService(nil, nil, 0)

	_, err := svc.Analyze(context.Background(), validTrendsRequest())

	assert.ErrorIs(t, err, markettrendserrors.ErrNotConfigured)
}

func TestService_Analyze_LLMFailure(t *testing.T) {
	llm := &fakeLLM{CompleteFn: func(context.Context, string, string) (string, error) {
		return "", errors.New("dial tcp: connection refused")
	}}
	svc := NewService(llm, nil, 0)

	_, err := svc.Analyze(context.Background(), validTrendsRequest())

	assert.ErrorIs(t, err, markettrendserrors.ErrServiceUnavailable)
}

func TestService_Analyze_InvalidFormat(t *testing.T) {
	llm := &fakeLLM{CompleteFn: func(context.Context, string, string) (string, error) {
		return "I am not able to answer.", nil
	}}
	svc := NewService(llm, nil, 0)

	_, err := svc.Analyze(context.Background(), validTrendsRequest())

	assert.ErrorIs(t, err, markettrendserrors.ErrInvalidModelResponse)
}

func TestService_Analyze_CacheMissStores(t *testing.T) {
	ctx := context.Background()
	req := validTrendsRequest()
	key := cacheKey(req)
	ttl := time.Hour

	llm := &fakeLLM{CompleteFn: func(_ context.Context, sys, user string) (string, error) {
		assert.Equal(t, systemPrompt, sys)
		assert.Contains(t, user, "- Resource Type: Freelancer")
		return sampleAnswer, nil
	}}

	expected, err := parseModelOutput(sampleAnswer)
	require.NoError(t, err)
	expected.RawModelOutput = sampleAnswer
	data, err := json.Marshal(expected)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, data, ttl).SetVal("OK")

	svc := NewService(llm, rdb, ttl)
	resp, err := svc.Analyze(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
	assert.Equal(t, 1, llm.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Analyze_CacheHit(t *testing.T) {
	ctx := context.Background()
	req := validTrendsRequest()

	cached := TrendsResponse{MarketDemand: "high", Summary: "cached"}
	data, _ := json.Marshal(cached)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(cacheKey(req)).SetVal(string(data))

	llm := &fakeLLM{}
	svc := NewService(llm, rdb, time.Hour)
	resp, err := svc.Analyze(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "cached", resp.Summary)
	assert.Zero(t, llm.calls)
}
