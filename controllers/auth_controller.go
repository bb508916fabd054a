package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openroam/travelblog/config"
	"github.com/openroam/travelblog/middleware"
	"github.com/openroam/travelblog/utils"
)

// AuthController implements admin console authentication: a configured
// credential pair validated server-side, exchanged for a short-lived signed
// session token.
type AuthController struct {
	username     string
	passwordHash string
	sessionTTL   time.Duration
}

// NewAuthController builds the controller from configuration. A plain
// ADMIN_PASSWORD is hashed once at boot so only the hash stays in memory.
func NewAuthController() *AuthController {
	cfg := config.Get()
	hash := cfg.AdminPasswordHash
	if hash == "" && cfg.AdminPassword != "" {
		h, err := utils.HashPassword(cfg.AdminPassword)
		if err == nil {
			hash = h
		}
	}
	if hash == "" && utils.Sugar != nil {
		utils.Sugar.Warn("no admin credentials configured, admin login is disabled")
	}
	return &AuthController{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		sessionTTL:   time.Duration(cfg.SessionHours) * time.Hour,
	}
}

// Login validates the credential pair and issues a session token.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	if a.passwordHash == "" ||
		!strings.EqualFold(strings.TrimSpace(req.Username), a.username) ||
		!utils.CheckPassword(a.passwordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "invalid username or password")
		return
	}

	token, err := utils.GenerateToken(a.username, a.sessionTTL)
	if err != nil {
		utils.ServerError(ctx, 50010)
		return
	}

	utils.Success(ctx, gin.H{
		"token":      token,
		"username":   a.username,
		"expires_at": time.Now().Add(a.sessionTTL).UTC(),
	})
}

// Logout revokes the presented session token until its natural expiry.
func (a *AuthController) Logout(ctx *gin.Context) {
	tokenVal, _ := ctx.Get(middleware.ContextTokenKey)
	token, _ := tokenVal.(string)
	if token != "" {
		expiresAt := time.Now().Add(a.sessionTTL)
		if claims, err := utils.ParseToken(token); err == nil && claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		utils.BlacklistToken(token, expiresAt)
	}
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated admin identity, used to gate admin routes
// on reload.
func (a *AuthController) Me(ctx *gin.Context) {
	unameVal, _ := ctx.Get(middleware.ContextUsernameKey)
	uname, _ := unameVal.(string)
	utils.Success(ctx, gin.H{"username": uname})
}
