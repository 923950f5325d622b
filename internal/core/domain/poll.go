package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinPollOptions = 2
	// MaxOptionLength is counted in characters, matching the poll_options check.
	MaxOptionLength = 500
)

type Poll struct {
	ID                 uuid.UUID    `json:"id"`
	Title              string       `json:"title"`
	Description        *string      `json:"description,omitempty"`
	CreatedBy          uuid.UUID    `json:"created_by"`
	IsActive           bool         `json:"is_active"`
	AllowMultipleVotes bool         `json:"allow_multiple_votes"`
	ExpiresAt          *time.Time   `json:"expires_at,omitempty"`
	Options            []PollOption `json:"options,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// IsExpired reports whether the poll has an expiration that is not after now.
func (p *Poll) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && !p.ExpiresAt.After(now)
}

// IsOpen reports whether the poll accepts votes at now.
func (p *Poll) IsOpen(now time.Time) bool {
	return p.IsActive && !p.IsExpired(now)
}

// HasOption reports whether optionID is one of the poll's options.
func (p *Poll) HasOption(optionID uuid.UUID) bool {
	for _, opt := range p.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

type PollOption struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"poll_id"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// PollOptionStats is the per-option vote tally read from the poll_results view.
type PollOptionStats struct {
	OptionID   uuid.UUID `json:"option_id"`
	PollID     uuid.UUID `json:"poll_id"`
	OptionText string    `json:"option_text"`
	VoteCount  int64     `json:"vote_count"`
}

// ActivePoll is a row of the active_polls view.
type ActivePoll struct {
	Poll
	CreatorName string `json:"creator_name"`
	OptionCount int64  `json:"option_count"`
	TotalVotes  int64  `json:"total_votes"`
}

type Creator struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OptionWithVotes struct {
	PollOption
	VoteCount  int64   `json:"vote_count"`
	Percentage float64 `json:"percentage"`
}

// PollDetail is a poll with its creator and options merged with vote counts.
type PollDetail struct {
	Poll
	Creator    Creator           `json:"creator"`
	Options    []OptionWithVotes `json:"options"`
	TotalVotes int64             `json:"total_votes"`
}

// NewPollDetail merges stats onto options by option id. Options without a
// stats row count zero votes.
func NewPollDetail(poll Poll, creator Creator, options []PollOption, stats []PollOptionStats) *PollDetail {
	counts := make(map[uuid.UUID]int64, len(stats))
	for _, s := range stats {
		counts[s.OptionID] = s.VoteCount
	}

	detail := &PollDetail{
		Poll:    poll,
		Creator: creator,
		Options: make([]OptionWithVotes, 0, len(options)),
	}
	detail.Poll.Options = nil

	for _, opt := range options {
		count := counts[opt.ID]
		detail.TotalVotes += count
		detail.Options = append(detail.Options, OptionWithVotes{PollOption: opt, VoteCount: count})
	}

	if detail.TotalVotes > 0 {
		for i := range detail.Options {
			detail.Options[i].Percentage = float64(detail.Options[i].VoteCount) / float64(detail.TotalVotes) * 100
		}
	}

	return detail
}
