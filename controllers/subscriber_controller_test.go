package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openroam/travelblog/models"
)

func TestSubscribe(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, resp := doJSON(t, r, http.MethodPost, "/api/subscribers", "", map[string]interface{}{
		"email": "Reader@Example.COM",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var sub models.Subscriber
	require.NoError(t, json.Unmarshal(resp.Data, &sub))
	assert.Equal(t, "reader@example.com", sub.Email, "email is stored lowercased")

	w, resp = doJSON(t, r, http.MethodGet, "/api/subscribers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var subs []models.Subscriber
	require.NoError(t, json.Unmarshal(resp.Data, &subs))
	assert.Len(t, subs, 1)
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/subscribers", "", map[string]interface{}{
		"email": "reader@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same address again, with different casing.
	w, resp := doJSON(t, r, http.MethodPost, "/api/subscribers", "", map[string]interface{}{
		"email": "READER@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already subscribed", resp.Message)

	w, resp = doJSON(t, r, http.MethodGet, "/api/subscribers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var subs []models.Subscriber
	require.NoError(t, json.Unmarshal(resp.Data, &subs))
	assert.Len(t, subs, 1, "exactly one record for the address")
}

func TestSubscribeInvalidEmail(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/subscribers", "", map[string]interface{}{
		"email": "nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSubscriber(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, resp := doJSON(t, r, http.MethodPost, "/api/subscribers", "", map[string]interface{}{
		"email": "reader@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var sub models.Subscriber
	require.NoError(t, json.Unmarshal(resp.Data, &sub))

	w, _ = doJSON(t, r, http.MethodDelete, "/api/subscribers/"+itoa(sub.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/subscribers/"+itoa(sub.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
