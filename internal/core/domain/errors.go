package domain

import "errors"

var (
	ErrPollNotFound       = errors.New("poll not found")
	ErrInvalidOption      = errors.New("invalid option for this poll")
	ErrTitleRequired      = errors.New("title is required")
	ErrNotEnoughOptions   = errors.New("a poll must have at least 2 options")
	ErrOptionTooLong      = errors.New("poll options must be at most 500 characters")
	ErrExpiresInPast      = errors.New("expiration must be in the future")
	ErrPollInactive       = errors.New("this poll is no longer active")
	ErrPollExpired        = errors.New("this poll has expired")
	ErrAlreadyVoted       = errors.New("you have already voted on this option")
	ErrNotPollCreator     = errors.New("you can only delete polls you created")
	ErrUnauthenticated    = errors.New("you must be logged in")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInternal           = errors.New("internal server error")
)

// Kind groups errors by how a caller should react to them.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidOption, KindValidation},
	{ErrTitleRequired, KindValidation},
	{ErrNotEnoughOptions, KindValidation},
	{ErrOptionTooLong, KindValidation},
	{ErrExpiresInPast, KindValidation},
	{ErrInvalidUserInput, KindValidation},
	{ErrUnauthenticated, KindAuthentication},
	{ErrInvalidCredentials, KindAuthentication},
	{ErrInvalidToken, KindAuthentication},
	{ErrNotPollCreator, KindAuthorization},
	{ErrPollNotFound, KindNotFound},
	{ErrUserNotFound, KindNotFound},
	{ErrPollInactive, KindConflict},
	{ErrPollExpired, KindConflict},
	{ErrAlreadyVoted, KindConflict},
	{ErrUserExists, KindConflict},
}

// KindOf classifies err by the first domain sentinel found in its chain.
// Anything unknown is KindUnexpected.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnexpected
}
