package session

import "errors"

var (
	// ErrNoDueItems is returned by Start when the due-item query comes
	// back empty. No session is created.
	ErrNoDueItems = errors.New("no items due for review")

	// ErrSessionNotFound indicates an unknown (or already evicted) session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCompleted indicates an operation on a finalized session.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrSessionActive is returned by Complete while queue items remain.
	ErrSessionActive = errors.New("session still has items remaining")
)
