package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecentVotesWindow bounds the "thisMonth" dashboard counter.
const RecentVotesWindow = 7 * 24 * time.Hour

// UserPoll is a poll owned by the dashboard user with its option count and
// the creation time of every vote cast on it.
type UserPoll struct {
	Poll
	OptionCount int64       `json:"option_count"`
	VoteCount   int64       `json:"vote_count"`
	VoteTimes   []time.Time `json:"-"`
}

type DashboardStats struct {
	TotalPolls  int `json:"totalPolls"`
	ActivePolls int `json:"activePolls"`
	TotalVotes  int `json:"totalVotes"`
	ThisMonth   int `json:"thisMonth"`
}

type Dashboard struct {
	UserID uuid.UUID      `json:"-"`
	Polls  []UserPoll     `json:"polls"`
	Stats  DashboardStats `json:"stats"`
}

// ComputeDashboardStats derives the dashboard counters at now. Recent votes
// are the ones created strictly after now minus RecentVotesWindow.
func ComputeDashboardStats(polls []UserPoll, now time.Time) DashboardStats {
	cutoff := now.Add(-RecentVotesWindow)
	stats := DashboardStats{TotalPolls: len(polls)}

	for i := range polls {
		if polls[i].IsOpen(now) {
			stats.ActivePolls++
		}
		stats.TotalVotes += len(polls[i].VoteTimes)
		for _, at := range polls[i].VoteTimes {
			if at.After(cutoff) {
				stats.ThisMonth++
			}
		}
	}

	return stats
}
