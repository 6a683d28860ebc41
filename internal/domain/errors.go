package domain

import "errors"

var (
	// ErrNoProblems is returned when a session is started with no content.
	ErrNoProblems = errors.New("no problems available")
	// ErrNoSelection is returned when submitting without a selected answer.
	ErrNoSelection = errors.New("no answer selected")
	// ErrInvalidState is returned when an operation is called outside the
	// session state it is valid in.
	ErrInvalidState = errors.New("operation not valid in current session state")
	// ErrSessionCompleted is returned when acting on a terminal session.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrInvalidSubject indicates an unknown subject was requested.
	ErrInvalidSubject = errors.New("invalid subject")
	// ErrProblemSetNotFound indicates the requested content could not be loaded.
	ErrProblemSetNotFound = errors.New("problem set not found")
	// ErrGameNotFound indicates an unknown game ID.
	ErrGameNotFound = errors.New("game not found")
	// ErrChallengeNotFound indicates an unknown challenge type.
	ErrChallengeNotFound = errors.New("challenge type not found")
	// ErrEntryNotFound indicates the user has no leaderboard entry in scope.
	ErrEntryNotFound = errors.New("leaderboard entry not found")
)
