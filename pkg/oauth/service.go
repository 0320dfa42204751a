package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/user"
)

var (
	// ErrInvalidProvider is returned when an unsupported provider is specified
	ErrInvalidProvider = errors.New("invalid OAuth provider")
	// ErrInvalidCode is returned when the authorization code is invalid
	ErrInvalidCode = errors.New("invalid authorization code")
	// ErrProviderAPIError is returned when the provider API returns an error
	ErrProviderAPIError = errors.New("OAuth provider API error")
)

// Provider represents an OAuth provider
type Provider string

// ProviderGoogle is the only provider the site offers
const ProviderGoogle Provider = "google"

// UserInfo holds basic user information returned by the provider
type UserInfo struct {
	ID       string
	Email    string
	Name     string
	Provider Provider
}

// Config holds OAuth client configuration
type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	CallbackURL        string
}

// Service handles the Google OAuth login flow
type Service struct {
	db     *ent.Client
	config Config
	client *http.Client
}

// NewService creates a new OAuth service
func NewService(db *ent.Client, cfg Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetAuthURL returns the OAuth authorization URL for a provider
func (s *Service) GetAuthURL(provider Provider, state string) (string, error) {
	if provider != ProviderGoogle {
		return "", ErrInvalidProvider
	}

	params := url.Values{}
	params.Add("client_id", s.config.GoogleClientID)
	params.Add("redirect_uri", s.config.CallbackURL+"/google")
	params.Add("response_type", "code")
	params.Add("scope", "openid email profile")
	params.Add("state", state)
	return "https://accounts.google.com/o/oauth2/v2/auth?" + params.Encode(), nil
}

// HandleCallback exchanges the authorization code and fetches user info
func (s *Service) HandleCallback(ctx context.Context, provider Provider, code string) (*UserInfo, error) {
	if provider != ProviderGoogle {
		return nil, ErrInvalidProvider
	}

	data := url.Values{}
	data.Set("code", code)
	data.Set("client_id", s.config.GoogleClientID)
	data.Set("client_secret", s.config.GoogleClientSecret)
	data.Set("redirect_uri", s.config.CallbackURL+"/google")
	data.Set("grant_type", "authorization_code")

	resp, err := s.client.PostForm("https://oauth2.googleapis.com/token", data)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidCode
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tokenResp.AccessToken)

	resp, err = s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrProviderAPIError
	}

	var googleUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &UserInfo{
		ID:       googleUser.ID,
		Email:    googleUser.Email,
		Name:     googleUser.Name,
		Provider: ProviderGoogle,
	}, nil
}

// FindOrCreateUser finds an existing user by OAuth identity or email, or
// creates a fresh free-tier account. The bool reports whether a new
// account was created.
func (s *Service) FindOrCreateUser(ctx context.Context, info *UserInfo) (*ent.User, bool, error) {
	existing, err := s.db.User.Query().
		Where(
			user.OauthProviderEQ(string(info.Provider)),
			user.OauthIDEQ(info.ID),
		).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	// Same email registered with a password: link the OAuth identity
	existing, err = s.db.User.Query().
		Where(user.EmailEQ(info.Email)).
		Only(ctx)
	if err == nil {
		existing, err = existing.Update().
			SetOauthProvider(string(info.Provider)).
			SetOauthID(info.ID).
			Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to link OAuth account: %w", err)
		}
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query user by email: %w", err)
	}

	created, err := s.db.User.Create().
		SetEmail(info.Email).
		SetName(info.Name).
		SetOauthProvider(string(info.Provider)).
		SetOauthID(info.ID).
		SetPlanTier(user.PlanTierFree).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	return created, true, nil
}
