package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/infra/repository"
	"github.com/craftfolio/booking-engine/internal/middleware"
	"github.com/craftfolio/booking-engine/internal/models"
)

type AuthHandler struct {
	sessions *repository.SessionStoreRepository
}

func NewAuthHandler(sessions *repository.SessionStoreRepository) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type RegisterRequest struct {
	Tenant   string `json:"tenant" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Tenant   string `json:"tenant" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Tenant, email and password (8+ chars) are required.")
		return
	}

	exists, err := h.sessions.HasAccount(c.Request.Context(), req.Tenant)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	if exists {
		httperr.Write(c, http.StatusConflict, "tenant_taken", "Tenant already has an account.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_failed", "Could not create account.")
		return
	}

	account := &models.Account{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.sessions.SaveAccount(c.Request.Context(), req.Tenant, account); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tenant": req.Tenant})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Tenant, email and password are required.")
		return
	}

	account, err := h.sessions.GetAccount(c.Request.Context(), req.Tenant)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	if account.Email != req.Email ||
		bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid tenant or credentials.")
		return
	}

	token := uuid.NewString()
	csrf := uuid.NewString()

	sess := &models.Session{
		TenantID:  req.Tenant,
		CSRFToken: csrf,
	}
	if err := h.sessions.CreateSession(c.Request.Context(), token, sess, models.SessionTTL); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(models.SessionTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"session_token": token,
		"csrf_token":    csrf,
	})
}
