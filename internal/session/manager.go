package session

import (
	"context"
	"sync"

	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Manager runs the score simulator for many sessions on top of a Store.
// Each operation loads the session list, applies one simulator call and saves
// it back.
type Manager struct {
	store  Store
	logger calculation.Logger
	mu     sync.Mutex
	newID  func() string
}

// NewManager creates a session manager over store.
func NewManager(store Store, logger calculation.Logger) *Manager {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Manager{
		store:  store,
		logger: logger,
		newID:  func() string { return uuid.New().String() },
	}
}

// Create starts an empty session and returns its ID.
func (m *Manager) Create(ctx context.Context) (string, error) {
	id := m.newID()
	if err := m.store.Save(ctx, id, nil); err != nil {
		return "", err
	}
	m.logger.Debugf("session %s created", id)
	return id, nil
}

func (m *Manager) simulator(ctx context.Context, id string) (*calculation.Simulator, error) {
	actions, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return calculation.RestoreSimulator(actions), nil
}

// Record adds an action to the session.
func (m *Manager) Record(ctx context.Context, id string, kind domain.ActionKind, currentValue, newValue decimal.Decimal) (domain.SimulatedAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sim, err := m.simulator(ctx, id)
	if err != nil {
		return domain.SimulatedAction{}, err
	}
	action := sim.Record(kind, currentValue, newValue)
	if err := m.store.Save(ctx, id, sim.Actions()); err != nil {
		return domain.SimulatedAction{}, err
	}
	m.logger.Debugf("session %s recorded %s impact=%d", id, kind, action.Impact)
	return action, nil
}

// Report returns the session's actions and projected score against baseScore.
func (m *Manager) Report(ctx context.Context, id string, baseScore decimal.Decimal) (domain.SimulationReport, error) {
	sim, err := m.simulator(ctx, id)
	if err != nil {
		return domain.SimulationReport{}, err
	}
	return sim.Report(baseScore), nil
}

// Clear empties the session's action list but keeps the session.
func (m *Manager) Clear(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.store.Load(ctx, id); err != nil {
		return err
	}
	m.logger.Debugf("session %s cleared", id)
	return m.store.Save(ctx, id, nil)
}

// End deletes the session.
func (m *Manager) End(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Delete(ctx, id)
}
