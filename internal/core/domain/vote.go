package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	ID       uuid.UUID `json:"id"`
	PollID   uuid.UUID `json:"poll_id"`
	OptionID uuid.UUID `json:"option_id"`
	UserID   uuid.UUID `json:"user_id"`
	// DedupeKey is stored in the unique (poll_id, user_id, dedupe_key) index.
	// Empty means the vote never conflicts.
	DedupeKey string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteScope decides which earlier votes block a new one on single-vote polls.
type VoteScope string

const (
	// VoteScopeOption allows one vote per option for each user.
	VoteScopeOption VoteScope = "option"
	// VoteScopePoll allows one vote per poll for each user.
	VoteScopePoll VoteScope = "poll"
)

// DedupeKey returns the uniqueness key for a vote on poll for optionID.
func (s VoteScope) DedupeKey(poll *Poll, optionID uuid.UUID) string {
	if poll.AllowMultipleVotes {
		return ""
	}
	if s == VoteScopePoll {
		return "poll"
	}
	return optionID.String()
}

func ParseVoteScope(s string) (VoteScope, bool) {
	switch VoteScope(s) {
	case VoteScopeOption, VoteScopePoll:
		return VoteScope(s), true
	case "":
		return VoteScopeOption, true
	}
	return "", false
}
