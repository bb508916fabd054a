package controllers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openroam/travelblog/config"
	"github.com/openroam/travelblog/models"
	"github.com/openroam/travelblog/utils"
)

// UploadController accepts a single multipart file per request and stores it
// under the public uploads directory.
type UploadController struct {
	db *gorm.DB
}

// NewUploadController creates a new UploadController instance.
func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{db: db}
}

// Upload stores the file from the `file` field and returns its metadata
// together with a client-usable relative path.
func (u *UploadController) Upload(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40070, "No file uploaded")
		return
	}
	defer file.Close()

	cfg := config.Get()
	maxSize := int64(cfg.UploadMaxSizeMB) << 20
	if header.Size > 0 && header.Size > maxSize {
		utils.Error(ctx, http.StatusBadRequest, 40071,
			fmt.Sprintf("file size exceeds %dMB", cfg.UploadMaxSizeMB))
		return
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		utils.ServerError(ctx, 50090)
		return
	}

	// Generated filename keeps only the original extension; the original
	// name is preserved in the ledger and the response.
	filename := uuid.NewString() + filepath.Ext(filepath.Base(header.Filename))
	dstPath := filepath.Join(cfg.UploadDir, filename)

	out, err := os.Create(dstPath)
	if err != nil {
		utils.ServerError(ctx, 50091)
		return
	}
	defer out.Close()

	// The multipart header size is client supplied, so enforce the cap on
	// the actual bytes as well.
	written, err := io.Copy(out, &io.LimitedReader{R: file, N: maxSize + 1})
	if err != nil {
		_ = os.Remove(dstPath)
		utils.ServerError(ctx, 50092)
		return
	}
	if written > maxSize {
		_ = os.Remove(dstPath)
		utils.Error(ctx, http.StatusBadRequest, 40071,
			fmt.Sprintf("file size exceeds %dMB", cfg.UploadMaxSizeMB))
		return
	}

	record := models.UploadedFile{
		Filename:     filename,
		OriginalName: filepath.Base(header.Filename),
		MimeType:     header.Header.Get("Content-Type"),
		Size:         written,
		Path:         "/uploads/" + filename,
	}
	if err := u.db.Create(&record).Error; err != nil {
		// The file is on disk and usable; losing the ledger row is logged
		// but does not fail the upload.
		if utils.Sugar != nil {
			utils.Sugar.Warnf("upload ledger write failed for %s: %v", filename, err)
		}
	}

	utils.Created(ctx, record)
}
