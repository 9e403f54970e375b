package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"makeyou-digital/backend/middlewares"
	"makeyou-digital/backend/models"
	"makeyou-digital/backend/utils"
)

const adminSubject = "admin"

type AdminDeps struct {
	PasswordHash string
	JWTSecret    string
	SessionTTL   time.Duration
	Logger       *zap.Logger
}

// Enabled reports whether both the password hash and the signing secret are set.
func (d AdminDeps) Enabled() bool {
	return d.PasswordHash != "" && d.JWTSecret != ""
}

// AdminLogin checks the admin password on the server and issues a bearer
// token for the admin routes.
func AdminLogin(d AdminDeps) gin.HandlerFunc {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.SessionTTL <= 0 {
		d.SessionTTL = 12 * time.Hour
	}
	return func(c *gin.Context) {
		if !d.Enabled() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin disabled"})
			return
		}
		var req models.AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if !utils.CheckPassword(d.PasswordHash, req.Password) {
			d.Logger.Warn("admin_login_rejected", zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, exp, err := utils.GenerateJWT(d.JWTSecret, adminSubject, utils.RoleAdmin, d.SessionTTL)
		if err != nil {
			d.Logger.Error("admin_token_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, models.AdminLoginResponse{Token: token, ExpiresAt: exp.UTC()})
	}
}

// AdminSession describes the token the request was authorised with.
func AdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.Get(middlewares.AdminClaimsKey)
		cl, _ := claims.(*utils.Claims)
		if !ok || cl == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		s := models.AdminSession{Subject: cl.Subject, Role: cl.Role}
		if cl.IssuedAt != nil {
			s.IssuedAt = cl.IssuedAt.UTC()
		}
		if cl.ExpiresAt != nil {
			s.ExpiresAt = cl.ExpiresAt.UTC()
		}
		c.JSON(http.StatusOK, s)
	}
}
