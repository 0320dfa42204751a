package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/enttest"
	"github.com/snapjobs/snapjobs-back/ent/user"
	"github.com/snapjobs/snapjobs-back/pkg/apikey"
)

func setupKeyHandler(t *testing.T) (*ent.Client, *APIKeyHandler) {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	key := base64.StdEncoding.EncodeToString(make([]byte, 32))
	codec, err := apikey.NewCodec(key)
	require.NoError(t, err)

	return client, NewAPIKeyHandler(apikey.NewService(client, codec), nil)
}

func createHandlerUser(t *testing.T, client *ent.Client, email string, tier user.PlanTier) *ent.User {
	t.Helper()

	u, err := client.User.Create().
		SetEmail(email).
		SetName("Test User").
		SetPasswordHash("x").
		SetPlanTier(tier).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func keyRequest(t *testing.T, method, body string, userID int, tier string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/api/v1/keys", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user_id", userID)
		c.Set("user_tier", tier)
	}
	return c, rec
}

// generateResponse is the creation payload: the key plus the one-time
// storage warning.
type generateResponse struct {
	Key     apikey.GeneratedKey `json:"key"`
	Message string              `json:"message"`
}

func generateKey(t *testing.T, h *APIKeyHandler, userID int, tier string) generateResponse {
	t.Helper()

	c, rec := keyRequest(t, http.MethodPost, `{"action":"generate"}`, userID, tier)
	require.NoError(t, h.MutateKey(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestMutateKey_Generate(t *testing.T) {
	client, h := setupKeyHandler(t)
	u := createHandlerUser(t, client, "gen@example.com", user.PlanTierPro)

	resp := generateKey(t, h, u.ID, "pro")
	assert.True(t, strings.HasPrefix(resp.Key.Value, "sjm_pr_"))
	assert.True(t, resp.Key.IsActive)
	assert.False(t, resp.Key.Revealed)

	// The plaintext is never retrievable again; the response says so
	assert.Contains(t, resp.Message, "won't be shown again")
}

func TestMutateKey_QuotaExceeded(t *testing.T) {
	client, h := setupKeyHandler(t)
	u := createHandlerUser(t, client, "quota@example.com", user.PlanTierFree)

	c, rec := keyRequest(t, http.MethodPost, `{"action":"generate"}`, u.ID, "free")
	require.NoError(t, h.MutateKey(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Free tier allows a single active key
	c, rec = keyRequest(t, http.MethodPost, `{"action":"generate"}`, u.ID, "free")
	require.NoError(t, h.MutateKey(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "quota_exceeded")
}

func TestMutateKey_RevealOnce(t *testing.T) {
	client, h := setupKeyHandler(t)
	u := createHandlerUser(t, client, "reveal@example.com", user.PlanTierPro)

	generated := generateKey(t, h, u.ID, "pro")

	body := fmt.Sprintf(`{"action":"reveal","keyId":%d}`, generated.Key.ID)
	c, rec := keyRequest(t, http.MethodPost, body, u.ID, "pro")
	require.NoError(t, h.MutateKey(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var revealed struct {
		Key     string `json:"key"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &revealed))
	assert.Equal(t, generated.Key.Value, revealed.Key)
	assert.Contains(t, revealed.Message, "ONCE")

	// Second reveal is refused
	c, rec = keyRequest(t, http.MethodPost, body, u.ID, "pro")
	require.NoError(t, h.MutateKey(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "already_revealed")
}

func TestMutateKey_ToggleAndRevoke(t *testing.T) {
	client, h := setupKeyHandler(t)
	u := createHandlerUser(t, client, "toggle@example.com", user.PlanTierPro)

	generated := generateKey(t, h, u.ID, "pro")

	body := fmt.Sprintf(`{"action":"toggle","keyId":%d}`, generated.Key.ID)
	c, rec := keyRequest(t, http.MethodPost, body, u.ID, "pro")
	require.NoError(t, h.MutateKey(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isActive":false`)

	body = fmt.Sprintf(`{"action":"revoke","keyId":%d}`, generated.Key.ID)
	c, rec = keyRequest(t, http.MethodPost, body, u.ID, "pro")
	require.NoError(t, h.MutateKey(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Revoked keys are gone
	c, rec = keyRequest(t, http.MethodPost, body, u.ID, "pro")
	require.NoError(t, h.MutateKey(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMutateKey_InvalidRequests(t *testing.T) {
	client, h := setupKeyHandler(t)
	u := createHandlerUser(t, client, "invalid@example.com", user.PlanTierPro)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown action", `{"action":"explode"}`, http.StatusBadRequest},
		{"missing action", `{}`, http.StatusBadRequest},
		{"reveal without key id", `{"action":"reveal"}`, http.StatusBadRequest},
		{"toggle without key id", `{"action":"toggle"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := keyRequest(t, http.MethodPost, tt.body, u.ID, "pro")
			require.NoError(t, h.MutateKey(c))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMutateKey_Unauthenticated(t *testing.T) {
	_, h := setupKeyHandler(t)

	c, rec := keyRequest(t, http.MethodPost, `{"action":"generate"}`, 0, "")
	require.NoError(t, h.MutateKey(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListKeys(t *testing.T) {
	client, h := setupKeyHandler(t)
	u := createHandlerUser(t, client, "list@example.com", user.PlanTierPro)

	for i := 0; i < 2; i++ {
		c, rec := keyRequest(t, http.MethodPost, `{"action":"generate"}`, u.ID, "pro")
		require.NoError(t, h.MutateKey(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	c, rec := keyRequest(t, http.MethodGet, "", u.ID, "pro")
	require.NoError(t, h.ListKeys(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Keys []apikey.KeySummary `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Keys, 2)

	// Listing never leaks secret material
	assert.NotContains(t, rec.Body.String(), "value")
	assert.NotContains(t, rec.Body.String(), "ciphertext")
}
