package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openroam/travelblog/models"
)

func TestListCategoriesWithCounts(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	author := createAuthor(t, r, token, "A")
	asia := createCategory(t, r, token, "Asia")
	europe := createCategory(t, r, token, "Europe")

	createPost(t, r, token, "One", "one", author.ID, []uint{asia.ID})
	createPost(t, r, token, "Two", "two", author.ID, []uint{asia.ID, europe.ID})

	w, resp := doJSON(t, r, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cats []models.Category
	require.NoError(t, json.Unmarshal(resp.Data, &cats))
	require.Len(t, cats, 2)

	counts := map[string]int64{}
	for _, c := range cats {
		counts[c.Slug] = c.Count
	}
	assert.Equal(t, int64(2), counts["asia"])
	assert.Equal(t, int64(1), counts["europe"])
}

func TestGetCategoryBySlug(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	createCategory(t, r, token, "Budget Travel")

	w, resp := doJSON(t, r, http.MethodGet, "/api/categories/slug/budget-travel", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cat models.Category
	require.NoError(t, json.Unmarshal(resp.Data, &cat))
	assert.Equal(t, "Budget Travel", cat.Name)

	w, _ = doJSON(t, r, http.MethodGet, "/api/categories/slug/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategoryDetachesPosts(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	author := createAuthor(t, r, token, "A")
	asia := createCategory(t, r, token, "Asia")
	europe := createCategory(t, r, token, "Europe")
	createPost(t, r, token, "Both", "both", author.ID, []uint{asia.ID, europe.ID})

	w, _ := doJSON(t, r, http.MethodDelete, "/api/categories/"+itoa(asia.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodGet, "/api/posts/slug/both", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(resp.Data, &post))
	require.Len(t, post.Categories, 1, "deleted category detached from the post")
	assert.Equal(t, europe.ID, post.Categories[0].ID)

	w, resp = doJSON(t, r, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats []models.Category
	require.NoError(t, json.Unmarshal(resp.Data, &cats))
	require.Len(t, cats, 1)
	assert.Equal(t, "europe", cats[0].Slug)
}

func TestUpdateCategoryMerge(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	cat := createCategory(t, r, token, "Asia")

	w, resp := doJSON(t, r, http.MethodPut, "/api/categories/"+itoa(cat.ID), token, map[string]interface{}{
		"description": "Across the continent",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Category
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, "Asia", updated.Name, "unspecified name unchanged")
	assert.Equal(t, "asia", updated.Slug)
	assert.Equal(t, "Across the continent", updated.Description)
}
