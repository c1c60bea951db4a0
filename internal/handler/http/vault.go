package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	items, err := h.services.VaultService.ListItems(ctx, userID)
	if err != nil {
		log.Err(err).Msg("vault listing failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var item models.VaultItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Ownership comes from the token, never from the body.
	item.UserID = userID

	created, err := h.services.VaultService.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Msg("vault item creation failed")
		h.writeVaultError(w, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse{Message: "item created", Item: created}, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var item models.VaultItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The path, not the body, names the target row.
	item.ID = chi.URLParam(r, "id")
	item.UserID = userID

	updated, err := h.services.VaultService.UpdateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("id", item.ID).Msg("vault item update failed")
		h.writeVaultError(w, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse{Message: "item updated", Item: updated}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.services.VaultService.DeleteItem(ctx, userID, id); err != nil {
		log.Err(err).Str("id", id).Msg("vault item deletion failed")
		h.writeVaultError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "item deleted"}, http.StatusOK)
}

// writeVaultError maps service and store sentinel errors of the vault
// endpoints to HTTP status codes. An attempt to touch someone else's item
// returns 401 rather than 404: the row exists, the caller just does not
// own it.
func (h *Handler) writeVaultError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrVaultItemNotFound):
		utils.WriteError(w, "vault item not found", http.StatusNotFound)
	case errors.Is(err, store.ErrNotOwner):
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidDataProvided):
		utils.WriteError(w, "invalid data provided", http.StatusBadRequest)
	default:
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
