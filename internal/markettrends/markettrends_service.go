package markettrends

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	markettrendserrors "go-apg/internal/markettrends/errors"
	"go-apg/internal/shared/contextutil"
	"go-apg/internal/shared/metrics"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheKeyPrefix = "market_trends:"

var validResourceTypes = []string{"Employee", "Freelancer", "Salarie", "Pigiste"}

//go:generate mockgen -source=markettrends_service.go -destination=mock/markettrends_service_mock.go -package=mock
type Service interface {
	Analyze(ctx context.Context, req TrendsRequest) (TrendsResponse, error)
}

type service struct {
	llm      LLMClient
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService builds the analyzer. A nil llm makes every call fail with
// ErrNotConfigured.
func NewService(llm LLMClient, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("markettrends.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("markettrends.service")
	}
	return &service{
		llm:      llm,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) Analyze(ctx context.Context, req TrendsRequest) (TrendsResponse, error) {
	if err := validate(req); err != nil {
		return TrendsResponse{}, err
	}
	if s.llm == nil {
		return TrendsResponse{}, markettrendserrors.ErrNotConfigured
	}

	log := contextutil.GetLogger(ctx, s.logger)
	provider := s.llm.Provider()
	key := cacheKey(req)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var resp TrendsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				metrics.MarketTrendsRequestsTotal.WithLabelValues(provider, "hit").Inc()
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		log.Info("calling llm for market trends",
			zap.String("provider", provider),
			zap.String("role", req.Role),
			zap.String("location", optional(req.Location)),
		)

		raw, err := s.llm.Complete(ctx, systemPrompt, buildUserPrompt(req))
		if err != nil {
			metrics.MarketTrendsRequestsTotal.WithLabelValues(provider, "error").Inc()
			log.Error("llm call failed", zap.String("provider", provider), zap.Error(err))
			return nil, markettrendserrors.ErrServiceUnavailable
		}

		resp, err := parseModelOutput(raw)
		if err != nil {
			metrics.MarketTrendsRequestsTotal.WithLabelValues(provider, "error").Inc()
			log.Error("llm returned unparseable output",
				zap.String("provider", provider),
				zap.Int("length", len(raw)),
				zap.Error(err),
			)
			return nil, markettrendserrors.ErrInvalidModelResponse
		}
		resp.RawModelOutput = raw

		metrics.MarketTrendsRequestsTotal.WithLabelValues(provider, "miss").Inc()

		if s.rdb != nil && s.cacheTTL > 0 {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
					log.Warn("failed to cache market trends", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return TrendsResponse{}, err
	}

	return v.(TrendsResponse), nil
}

func validate(req TrendsRequest) error {
	if strings.TrimSpace(req.Role) == "" {
		return markettrendserrors.ErrRoleRequired
	}
	if strings.TrimSpace(req.ResourceType) == "" {
		return markettrendserrors.ErrResourceTypeRequired
	}
	if strings.TrimSpace(req.Currency) == "" {
		return markettrendserrors.ErrCurrencyRequired
	}
	for _, t := range validResourceTypes {
		if strings.EqualFold(strings.TrimSpace(req.ResourceType), t) {
			return nil
		}
	}
	return markettrendserrors.ErrInvalidResourceType
}

// cacheKey hashes the request after trimming and lower-casing its text fields,
// so equivalent requests share one cache entry.
func cacheKey(req TrendsRequest) string {
	norm := func(v string) string { return strings.ToLower(strings.TrimSpace(v)) }
	normalized := struct {
		Role         string   `json:"r"`
		Seniority    string   `json:"s"`
		Employee     bool     `json:"e"`
		Location     string   `json:"l"`
		Salary       *float64 `json:"ps"`
		BillRate     *float64 `json:"pb"`
		ClientName   string   `json:"c"`
		BusinessUnit string   `json:"bu"`
	}{
		Role:         norm(req.Role),
		Seniority:    norm(optional(req.Seniority)),
		Employee:     isEmployeeType(strings.TrimSpace(req.ResourceType)),
		Location:     norm(optional(req.Location)),
		Salary:       req.ProposedAnnualSalary,
		BillRate:     req.ProposedBillRate,
		ClientName:   norm(optional(req.ClientName)),
		BusinessUnit: norm(optional(req.BusinessUnit)),
	}

	data, _ := json.Marshal(normalized)
	sum := sha256.Sum256(data)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
