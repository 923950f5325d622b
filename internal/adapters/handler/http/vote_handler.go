package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

type VoteHandler struct {
	log     *slog.Logger
	service ports.VoteService
}

func NewVoteHandler(log *slog.Logger, service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		log:     log,
		service: service,
	}
}

type voteRequest struct {
	OptionID string `json:"option_id"`
}

// VoteOnPoll godoc
// @Summary      Votes on a poll
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Poll ID"
// @Param        vote  body  voteRequest  true  "Chosen option"
// @Success      201
// @Failure      400
// @Failure      401
// @Failure      404
// @Failure      409
// @Router       /api/polls/{id}/votes [post]
func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())

	// Login comes before body validation.
	if _, ok := session.UserID(); !ok {
		writeError(w, r, h.log, fmt.Errorf("%w to vote", domain.ErrUnauthenticated), "failed to submit vote")
		return
	}

	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.VoteInput{
		PollID:   chi.URLParam(r, "id"),
		OptionID: req.OptionID,
	}

	if err := h.service.Vote(r.Context(), session, input); err != nil {
		writeError(w, r, h.log, err, "failed to submit vote")
		return
	}

	writeSuccess(w, h.log, http.StatusCreated, nil)
}
