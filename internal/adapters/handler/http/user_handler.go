package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

type UserHandler struct {
	log     *slog.Logger
	service ports.UserService
}

func NewUserHandler(log *slog.Logger, service ports.UserService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: service,
	}
}

// GetMe godoc
// @Summary      Gets the authenticated user
// @Tags         users
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /api/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionFrom(r.Context()).UserID()
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthenticated, "failed to fetch user")
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err, "failed to fetch user")
		return
	}

	writeSuccess(w, h.log, http.StatusOK, envelope{"user": user})
}
