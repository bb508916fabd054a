package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"username": testAdminUser,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid username or password", resp.Message)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"username": "nobody",
		"password": testAdminPass,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginAndMe(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"username": testAdminUser,
		"password": testAdminPass,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, testAdminUser, login.Username)

	w, resp = doJSON(t, r, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, testAdminUser, me.Username)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The token is dead from this point on.
	w, _ = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsGarbageTokens(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A non-bearer scheme is rejected before token parsing.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStats(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	author := createAuthor(t, r, token, "A")
	createPost(t, r, token, "T", "t", author.ID, nil)

	w, resp := doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]int64
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, int64(1), stats["posts"])
	assert.Equal(t, int64(1), stats["published_posts"])
	assert.Equal(t, int64(1), stats["authors"])
	assert.Equal(t, int64(0), stats["comments"])
}
