package handlers

import (
	"context"
	"encoding/json"
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
	"github.com/snapjobs/snapjobs-back/pkg/auth"
	"github.com/snapjobs/snapjobs-back/pkg/models"
)

const testJWTSecret = "test-secret-key-for-auth-tests"

func setupAuthHandler(t *testing.T) (*ent.Client, *AuthHandler) {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	h := NewAuthHandler(client, nil, nil, nil, testJWTSecret, 24, "http://localhost:3000")
	return client, h
}

func authRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister(t *testing.T) {
	_, h := setupAuthHandler(t)

	c, rec := authRequest(t, `{"email":"new@example.com","password":"supersecret1","name":"New User"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, "free", resp.User.PlanTier)

	claims, err := auth.ValidateJWT(resp.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "free", claims.Tier)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, h := setupAuthHandler(t)

	c, rec := authRequest(t, `{"email":"dup@example.com","password":"supersecret1","name":"First"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = authRequest(t, `{"email":"dup@example.com","password":"supersecret1","name":"Second"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_Validation(t *testing.T) {
	_, h := setupAuthHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"nope","password":"supersecret1","name":"User"}`},
		{"short password", `{"email":"a@b.com","password":"short","name":"User"}`},
		{"missing name", `{"email":"a@b.com","password":"supersecret1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := authRequest(t, tt.body)
			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	_, h := setupAuthHandler(t)

	c, rec := authRequest(t, `{"email":"login@example.com","password":"supersecret1","name":"Login User"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = authRequest(t, `{"email":"login@example.com","password":"supersecret1"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotNil(t, resp.User.LastLoginAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, h := setupAuthHandler(t)

	c, rec := authRequest(t, `{"email":"wrong@example.com","password":"supersecret1","name":"User"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = authRequest(t, `{"email":"wrong@example.com","password":"not-the-password"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	_, h := setupAuthHandler(t)

	c, rec := authRequest(t, `{"email":"ghost@example.com","password":"supersecret1"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_OAuthOnlyAccount(t *testing.T) {
	client, h := setupAuthHandler(t)

	// Accounts created via Google have no password hash
	_, err := client.User.Create().
		SetEmail("oauth@example.com").
		SetName("OAuth User").
		SetOauthProvider("google").
		SetOauthID("g-123").
		Save(context.Background())
	require.NoError(t, err)

	c, rec := authRequest(t, `{"email":"oauth@example.com","password":"anything-at-all"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	_, h := setupAuthHandler(t)

	c, rec := authRequest(t, `{"email":"me@example.com","password":"supersecret1","name":"Me User"}`)
	require.NoError(t, h.Register(c))
	var created models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec = httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set("user_id", created.User.ID)

	require.NoError(t, h.Me(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "me@example.com", resp.Email)
}

func TestMe_Unauthenticated(t *testing.T) {
	_, h := setupAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Me(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
