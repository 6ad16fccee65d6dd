package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/config"
	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/mailer"
	"github.com/edbarbearia/barbershop-api/internal/middleware"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/rbac"
)

type AuthHandler struct {
	db      *gorm.DB
	cfg     *config.Config
	checker *rbac.Checker
	mail    mailer.Mailer
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, checker *rbac.Checker, mail mailer.Mailer) *AuthHandler {
	return &AuthHandler{
		db:      db,
		cfg:     cfg,
		checker: checker,
		mail:    mail,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RequestResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Logout é só um ack: o token é stateless e quem descarta é o cliente.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.Where("email = ? AND is_active = true", req.Email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   float64(user.ID),
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_error", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// ======================================================
// ME
// ======================================================

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Groups").First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	perms, err := h.checker.ListPermissions(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "permissions_error", "Erro ao carregar permissões.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"permissions": perms,
	})
}

// ======================================================
// PASSWORD RESET
// ======================================================

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.Where("email = ? AND is_active = true", req.Email).First(&user).Error; err != nil {
		// resposta idêntica para e-mail desconhecido
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		httperr.Internal(c, "token_error", "Erro ao gerar token.")
		return
	}
	token := hex.EncodeToString(raw)

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	if err := h.db.Create(&reset).Error; err != nil {
		httperr.Internal(c, "reset_error", "Erro ao registrar pedido.")
		return
	}

	if err := h.mail.SendPasswordReset(user.Email, token); err != nil {
		httperr.Internal(c, "mail_error", "Erro ao enviar e-mail.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var reset models.PasswordReset
	if err := h.db.
		Where("token = ? AND used_at IS NULL AND expires_at > ?", req.Token, time.Now()).
		First(&reset).Error; err != nil {
		httperr.BadRequest(c, "invalid_token", "Token inválido ou expirado.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_error", "Erro ao processar senha.")
		return
	}

	now := time.Now()
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", reset.UserID).
			Update("password_hash", string(hash)).Error; err != nil {
			return err
		}

		return tx.Model(&reset).Update("used_at", &now).Error
	})

	if err != nil {
		httperr.Internal(c, "reset_error", "Erro ao redefinir senha.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
