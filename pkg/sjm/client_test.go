package sjm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_ForwardsKeyAndBody(t *testing.T) {
	var gotKey, gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matches":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sjm_pr_test")

	resp, err := client.Do(context.Background(), "match", http.MethodPost, map[string]interface{}{
		"skills": []string{"go", "sql"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "OK", resp.StatusText)
	assert.JSONEq(t, `{"matches":[]}`, string(resp.Data))
	assert.Equal(t, "sjm_pr_test", gotKey)
	assert.Equal(t, "/match", gotPath)
	assert.Contains(t, gotBody, "skills")
}

func TestClient_Do_GetUsesQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")

	_, err := client.Do(context.Background(), "verify-skill", http.MethodGet, map[string]interface{}{
		"skill": "kubernetes",
	})
	require.NoError(t, err)
	assert.Equal(t, "skill=kubernetes", gotQuery)
}

func TestClient_Do_RejectsPathTraversal(t *testing.T) {
	client := NewClient("http://localhost:9", "key")

	for _, endpoint := range []string{"../admin", "a/b", "", "MATCH", "health?x=1"} {
		_, err := client.Do(context.Background(), endpoint, http.MethodGet, nil)
		assert.Error(t, err, "endpoint %q should be rejected", endpoint)
	}
}

func TestClient_Do_NonJSONUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")

	resp, err := client.Do(context.Background(), "interview", http.MethodPost, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.Status)

	// Raw text is wrapped so the response stays valid JSON
	var s string
	require.NoError(t, json.Unmarshal(resp.Data, &s))
	assert.Equal(t, "upstream exploded", s)
}

func TestClient_Healthy(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if healthy {
			w.Write([]byte(`{"status":"ok"}`))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")

	assert.True(t, client.Healthy(context.Background()))

	healthy = false
	assert.False(t, client.Healthy(context.Background()))
}
