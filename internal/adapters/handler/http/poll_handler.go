package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

type PollHandler struct {
	log     *slog.Logger
	service ports.PollService
}

func NewPollHandler(log *slog.Logger, service ports.PollService) *PollHandler {
	return &PollHandler{
		log:     log,
		service: service,
	}
}

type createPollRequest struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Options            []string   `json:"options"`
	AllowMultipleVotes bool       `json:"allow_multiple_votes"`
	ExpiresAt          *time.Time `json:"expires_at"`
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Creates a poll owned by the authenticated user. Blank options are dropped and at least two must remain.
// @Tags         polls
// @Accept       json
// @Produce      json
// @Param        poll  body  createPollRequest  true  "Poll to create"
// @Success      201
// @Failure      400
// @Failure      401
// @Router       /api/polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CreatePollInput{
		Title:              req.Title,
		Description:        req.Description,
		Options:            req.Options,
		AllowMultipleVotes: req.AllowMultipleVotes,
		ExpiresAt:          req.ExpiresAt,
	}

	pollID, err := h.service.Create(r.Context(), sessionFrom(r.Context()), input)
	if err != nil {
		writeError(w, r, h.log, err, "failed to create poll")
		return
	}

	writeSuccess(w, h.log, http.StatusCreated, envelope{"poll_id": pollID})
}

// ListActivePolls godoc
// @Summary      Lists active polls
// @Description  Returns open polls, newest first, with creator name and vote totals.
// @Tags         polls
// @Produce      json
// @Success      200
// @Router       /api/polls [get]
func (h *PollHandler) ListActivePolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.ListActive(r.Context())
	if err != nil {
		writeError(w, r, h.log, err, "failed to fetch polls")
		return
	}

	writeSuccess(w, h.log, http.StatusOK, envelope{"polls": polls})
}

// GetPoll godoc
// @Summary      Gets a poll
// @Description  Returns the poll with its creator, options, vote counts and percentages.
// @Tags         polls
// @Produce      json
// @Param        id   path  string  true  "Poll ID"
// @Success      200
// @Failure      404
// @Router       /api/polls/{id} [get]
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.service.GetPoll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err, "failed to fetch poll")
		return
	}

	writeSuccess(w, h.log, http.StatusOK, envelope{"poll": poll})
}

// DeletePoll godoc
// @Summary      Deletes a poll
// @Description  Deletes a poll created by the authenticated user, including its options and votes.
// @Tags         polls
// @Produce      json
// @Param        id   path  string  true  "Poll ID"
// @Success      200
// @Failure      401
// @Failure      403
// @Failure      404
// @Router       /api/polls/{id} [delete]
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, err, "failed to delete poll")
		return
	}

	writeSuccess(w, h.log, http.StatusOK, nil)
}

// Dashboard godoc
// @Summary      Lists the user's polls
// @Description  Returns every poll created by the authenticated user with aggregate stats.
// @Tags         polls
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /api/dashboard [get]
func (h *PollHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		writeError(w, r, h.log, err, "failed to fetch polls")
		return
	}

	writeSuccess(w, h.log, http.StatusOK, envelope{"polls": dashboard.Polls, "stats": dashboard.Stats})
}
