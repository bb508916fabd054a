package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openroam/travelblog/config"
	"github.com/openroam/travelblog/models"
	"github.com/openroam/travelblog/routes"
	"github.com/openroam/travelblog/utils"
)

const (
	testAdminUser = "admin"
	testAdminPass = "squirrel-overboard"
)

// newTestRouter builds the full engine against an isolated in-memory
// database and a miniredis instance.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	config.Set(config.AppConfig{
		AppPort:            "0",
		AdminUsername:      testAdminUser,
		AdminPassword:      testAdminPass,
		JWTSecret:          "test-secret",
		SessionHours:       1,
		UploadDir:          t.TempDir(),
		UploadMaxSizeMB:    1,
		AllowedOrigins:     []string{"*"},
		RateLimitPerMinute: 10000,
		GinMode:            "test",
	})

	mr := miniredis.RunT(t)
	utils.SetRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	// Foreign keys on so constraint behaviour matches MySQL in production.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Author{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Subscriber{},
		&models.UploadedFile{},
	))

	return routes.SetupRouter(db)
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

// adminToken logs in with the test credentials and returns the session token.
func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": testAdminUser,
		"password": testAdminPass,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// createAuthor inserts an author through the API and returns it.
func createAuthor(t *testing.T, r *gin.Engine, token, name string) models.Author {
	t.Helper()

	w, resp := doJSON(t, r, http.MethodPost, "/api/authors", token, map[string]interface{}{
		"name":   name,
		"avatar": "/x.png",
		"bio":    "b",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var author models.Author
	require.NoError(t, json.Unmarshal(resp.Data, &author))
	return author
}

// createCategory inserts a category through the API and returns it.
func createCategory(t *testing.T, r *gin.Engine, token, name string) models.Category {
	t.Helper()

	w, resp := doJSON(t, r, http.MethodPost, "/api/categories", token, map[string]interface{}{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var category models.Category
	require.NoError(t, json.Unmarshal(resp.Data, &category))
	return category
}

// createPost inserts a post through the API and returns it.
func createPost(t *testing.T, r *gin.Engine, token, title, slug string, authorID uint, categoryIDs []uint) models.Post {
	t.Helper()

	w, resp := doJSON(t, r, http.MethodPost, "/api/posts", token, map[string]interface{}{
		"title":       title,
		"slug":        slug,
		"excerpt":     "e",
		"content":     "c",
		"cover_image": "/y.png",
		"author_id":   authorID,
		"categories":  categoryIDs,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(resp.Data, &post))
	return post
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
