package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/enttest"
	"github.com/snapjobs/snapjobs-back/pkg/plans"
)

func seedPlan(t *testing.T, client *ent.Client, code, name string, price int, features ...string) {
	t.Helper()
	ctx := context.Background()

	p, err := client.Plan.Create().
		SetCode(code).
		SetName(name).
		SetPrice(price).
		SetAPIKeyLimit(3).
		SetRequestLimit(50000).
		Save(ctx)
	require.NoError(t, err)

	for i, f := range features {
		_, err := client.PlanFeature.Create().
			SetPlanID(p.ID).
			SetFeature(f).
			SetFeatureOrder(i).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestListPlans(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	seedPlan(t, client, "pro", "Pro", 49, "3 API keys", "50,000 requests/month")
	seedPlan(t, client, "free", "Free", 0, "1 API key")

	h := NewPlansHandler(plans.NewService(client, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListPlans(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Plans []plans.CatalogPlan `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 2)

	// Cheapest first
	assert.Equal(t, "free", resp.Plans[0].Code)
	assert.Equal(t, "$0", resp.Plans[0].Price)
	assert.Equal(t, "pro", resp.Plans[1].Code)
	assert.Equal(t, []string{"3 API keys", "50,000 requests/month"}, resp.Plans[1].Features)
}
