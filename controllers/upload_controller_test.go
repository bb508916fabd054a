package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openroam/travelblog/config"
	"github.com/openroam/travelblog/models"
)

func doUpload(t *testing.T, r http.Handler, token, filename string, content []byte) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestUploadFile(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, resp := doUpload(t, r, token, "photo.jpg", []byte("fake image bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	var record models.UploadedFile
	require.NoError(t, json.Unmarshal(resp.Data, &record))
	assert.Equal(t, "photo.jpg", record.OriginalName)
	assert.True(t, strings.HasPrefix(record.Path, "/uploads/"))
	assert.True(t, strings.HasSuffix(record.Filename, ".jpg"))
	assert.Equal(t, int64(len("fake image bytes")), record.Size)

	// The file lands in the configured upload directory.
	saved, err := os.ReadFile(filepath.Join(config.Get().UploadDir, record.Filename))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(saved))
}

func TestUploadMissingFile(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No file uploaded", resp.Message)
}

func TestUploadTooLarge(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	// The harness caps uploads at 1 MB.
	big := bytes.Repeat([]byte("x"), 1<<20+1)
	w, _ := doUpload(t, r, token, "big.bin", big)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doUpload(t, r, "", "photo.jpg", []byte("x"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
