package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openroam/travelblog/models"
)

func TestAuthorCRUD(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	author := createAuthor(t, r, token, "Sophie")

	w, resp := doJSON(t, r, http.MethodGet, "/api/authors/"+itoa(author.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Author
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "Sophie", got.Name)

	w, resp = doJSON(t, r, http.MethodPut, "/api/authors/"+itoa(author.ID), token, map[string]interface{}{
		"bio": "new bio",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "Sophie", got.Name, "unspecified name unchanged")
	assert.Equal(t, "new bio", got.Bio)

	w, _ = doJSON(t, r, http.MethodGet, "/api/authors/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAuthorKeepsPosts(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	author := createAuthor(t, r, token, "Sophie")
	createPost(t, r, token, "T", "t", author.ID, nil)

	// Deleting an author with posts succeeds even with foreign keys
	// enforced; the posts survive and render with an empty author.
	w, _ := doJSON(t, r, http.MethodDelete, "/api/authors/"+itoa(author.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodGet, "/api/posts/slug/t", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(resp.Data, &post))
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Empty(t, post.Author.Name)

	w, _ = doJSON(t, r, http.MethodGet, "/api/authors/"+itoa(author.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAuthorInvalidatesPostCache(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	author := createAuthor(t, r, token, "Sophie")
	createPost(t, r, token, "T", "t", author.ID, nil)

	// Prime the slug cache with the author embedded.
	w, resp := doJSON(t, r, http.MethodGet, "/api/posts/slug/t", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(resp.Data, &post))
	require.Equal(t, "Sophie", post.Author.Name)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/authors/"+itoa(author.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// A fresh read must not serve the deleted author from cache.
	w, resp = doJSON(t, r, http.MethodGet, "/api/posts/slug/t", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &post))
	assert.Empty(t, post.Author.Name)
}
