package handlers

import (
	"errors"
	"log/slog"

	"github.com/akhileshasapu/passvault/internal/middleware"
	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/akhileshasapu/passvault/internal/services"
	"github.com/akhileshasapu/passvault/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type VaultHandler struct {
	vaultService VaultServiceInterface
	log          *slog.Logger
}

func NewVaultHandler(vaultService VaultServiceInterface, log *slog.Logger) *VaultHandler {
	if log == nil {
		log = slog.Default()
	}
	return &VaultHandler{
		vaultService: vaultService,
		log:          log,
	}
}

func (h *VaultHandler) Create(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateVaultEntryRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	ctx := c.Request.Context()

	entry, err := h.vaultService.Create(ctx, accountID, req.Site, req.Username, req.Password)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.BadRequest(vErr.Error())
			return
		}
		h.log.ErrorContext(ctx, "failed to save vault entry", "account_id", accountID, "error", err)
		c.InternalServerError("failed to save vault entry")
		return
	}

	_ = c.JSON(200, dto.CreateVaultEntryResponse{
		Entry:   toVaultEntryResponse(entry),
		Message: "saved successfully",
	})
}

func (h *VaultHandler) List(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	ctx := c.Request.Context()

	entries, err := h.vaultService.ListForOwner(ctx, accountID)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to list vault entries", "account_id", accountID, "error", err)
		c.InternalServerError("failed to list vault entries")
		return
	}

	response := make([]dto.VaultEntryResponse, len(entries))
	for i := range entries {
		response[i] = toVaultEntryResponse(&entries[i])
	}

	_ = c.JSON(200, response)
}

// Delete answers 404 for unparseable ids as well as missing or foreign entries.
func (h *VaultHandler) Delete(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.NotFound("vault entry not found")
		return
	}

	ctx := c.Request.Context()

	if err := h.vaultService.Delete(ctx, accountID, entryID); err != nil {
		if errors.Is(err, services.ErrVaultEntryNotFound) {
			c.NotFound("vault entry not found")
			return
		}
		h.log.ErrorContext(ctx, "failed to delete vault entry", "account_id", accountID, "entry_id", entryID, "error", err)
		c.InternalServerError("failed to delete vault entry")
		return
	}

	_ = c.JSON(200, dto.MessageResponse{Message: "deleted successfully"})
}

func toVaultEntryResponse(e *models.VaultEntry) dto.VaultEntryResponse {
	return dto.VaultEntryResponse{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Site:      e.Site,
		Username:  e.Username,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
	}
}
