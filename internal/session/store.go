package session

import (
	"context"
	"errors"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Store persists the simulated actions of each session.
type Store interface {
	// Load returns the actions of a session, or ErrNotFound.
	Load(ctx context.Context, id string) ([]domain.SimulatedAction, error)
	// Save replaces the actions of a session and refreshes its expiry.
	Save(ctx context.Context, id string, actions []domain.SimulatedAction) error
	Delete(ctx context.Context, id string) error
}
