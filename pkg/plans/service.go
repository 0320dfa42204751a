package plans

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/plan"
	"github.com/snapjobs/snapjobs-back/ent/planfeature"
	"github.com/snapjobs/snapjobs-back/pkg/cache"
)

const catalogCacheKey = "plans:catalog"

// Service serves the public plan catalog from the database.
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new plan catalog service.
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
	}
}

// CatalogPlan is the pricing-page representation of a plan.
type CatalogPlan struct {
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	Price        string   `json:"price"`
	Period       string   `json:"period"`
	Features     []string `json:"features"`
	PriceID      string   `json:"priceId"`
	Color        string   `json:"color"`
	Recommended  bool     `json:"recommended"`
	APIKeyLimit  int      `json:"apiKeyLimit"`
	RequestLimit int      `json:"requestLimit"`
}

// ListCatalog returns all plans with their ordered features, cheapest
// first. Results are cached for an hour; the catalog only changes on
// deploys or reseeds.
func (s *Service) ListCatalog(ctx context.Context) ([]CatalogPlan, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, catalogCacheKey); err == nil && cached != "" {
			var result []CatalogPlan
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	rows, err := s.db.Plan.Query().
		WithFeatures(func(q *ent.PlanFeatureQuery) {
			q.Order(ent.Asc(planfeature.FieldFeatureOrder))
		}).
		Order(ent.Asc(plan.FieldPrice)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	result := make([]CatalogPlan, 0, len(rows))
	for _, p := range rows {
		features := make([]string, 0, len(p.Edges.Features))
		for _, f := range p.Edges.Features {
			features = append(features, f.Feature)
		}

		result = append(result, CatalogPlan{
			Name:         p.Name,
			Code:         p.Code,
			Price:        fmt.Sprintf("$%d", p.Price),
			Period:       "/" + p.BillingPeriod,
			Features:     features,
			PriceID:      p.StripePriceID,
			Color:        fmt.Sprintf("from-%s to-%s", p.ColorFrom, p.ColorTo),
			Recommended:  p.IsRecommended,
			APIKeyLimit:  p.APIKeyLimit,
			RequestLimit: p.RequestLimit,
		})
	}

	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, catalogCacheKey, payload, 1*time.Hour)
		}
	}

	return result, nil
}

// PriceIDForCode returns the Stripe price ID configured for a plan code.
func (s *Service) PriceIDForCode(ctx context.Context, code string) (string, error) {
	if !Valid(Tier(code)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlanTier, code)
	}

	p, err := s.db.Plan.Query().
		Where(plan.CodeEQ(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("%w: %q", ErrInvalidPlanTier, code)
		}
		return "", fmt.Errorf("failed to get plan: %w", err)
	}

	return p.StripePriceID, nil
}

// InvalidateCache drops the cached catalog (used after reseeding).
func (s *Service) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, catalogCacheKey)
}
