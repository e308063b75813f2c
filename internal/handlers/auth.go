package handlers

import (
	"errors"
	"log/slog"

	"github.com/akhileshasapu/passvault/internal/middleware"
	"github.com/akhileshasapu/passvault/internal/services"
	"github.com/akhileshasapu/passvault/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type AuthHandler struct {
	authService AuthServiceInterface
	events      AuthEventRecorder
	log         *slog.Logger
}

func NewAuthHandler(authService AuthServiceInterface, events AuthEventRecorder, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		authService: authService,
		events:      events,
		log:         log,
	}
}

func (h *AuthHandler) Signup(c *drift.Context) {
	var req dto.SignupRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	ctx := c.Request.Context()

	_, err := h.authService.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.record("signup", "invalid")
			c.BadRequest(vErr.Error())
		case errors.Is(err, services.ErrDuplicateAccount):
			h.record("signup", "duplicate")
			c.BadRequest("an account with this email already exists")
		default:
			h.record("signup", "error")
			h.log.ErrorContext(ctx, "signup failed", "error", err)
			c.InternalServerError("failed to create account")
		}
		return
	}

	h.record("signup", "success")
	_ = c.JSON(200, dto.MessageResponse{Message: "signup successful"})
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	ctx := c.Request.Context()

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.record("login", "invalid")
			c.BadRequest(vErr.Error())
		case services.IsAuthError(err, services.NoSuchAccount):
			h.record("login", "no_such_account")
			c.BadRequest("no account matched")
		case services.IsAuthError(err, services.BadCredentials):
			h.record("login", "bad_credentials")
			c.Unauthorized("invalid credentials")
		default:
			h.record("login", "error")
			h.log.ErrorContext(ctx, "login failed", "error", err)
			c.InternalServerError("failed to log in")
		}
		return
	}

	h.record("login", "success")
	_ = c.JSON(200, dto.LoginResponse{
		Token:     result.Token,
		AccountID: result.AccountID,
		Username:  result.Username,
		Message:   "login successful",
	})
}

func (h *AuthHandler) Me(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	ctx := c.Request.Context()

	account, err := h.authService.Me(ctx, accountID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.NotFound("account not found")
			return
		}
		h.log.ErrorContext(ctx, "failed to load account", "account_id", accountID, "error", err)
		c.InternalServerError("failed to load account")
		return
	}

	_ = c.JSON(200, dto.AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	})
}

func (h *AuthHandler) record(event, outcome string) {
	if h.events != nil {
		h.events.AuthEvent(event, outcome)
	}
}
