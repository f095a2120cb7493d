package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxScore is the top of the bureau score range every impact weight is derived from.
const MaxScore = 900

// ErrUnknownAction is returned when an action kind is not one of the known kinds.
var ErrUnknownAction = errors.New("unknown action kind")

// ActionKind identifies a hypothetical credit action the simulator can model.
type ActionKind string

const (
	ActionNewLoan        ActionKind = "new_loan"
	ActionPayOverdue     ActionKind = "pay_overdue"
	ActionPayWriteOff    ActionKind = "pay_writeoff"
	ActionSettleWriteOff ActionKind = "settle_writeoff"
	ActionAccountAge     ActionKind = "account_age"
	ActionUtilization    ActionKind = "utilization"
)

var actionDescriptions = map[ActionKind]string{
	ActionNewLoan:        "Take a new loan",
	ActionPayOverdue:     "Pay overdue balance",
	ActionPayWriteOff:    "Pay written-off account in full",
	ActionSettleWriteOff: "Settle written-off account",
	ActionAccountAge:     "Let accounts age",
	ActionUtilization:    "Reduce credit utilization",
}

// AllActionKinds returns the known action kinds in display order.
func AllActionKinds() []ActionKind {
	return []ActionKind{
		ActionNewLoan,
		ActionPayOverdue,
		ActionPayWriteOff,
		ActionSettleWriteOff,
		ActionAccountAge,
		ActionUtilization,
	}
}

// Valid reports whether k is one of the known action kinds.
func (k ActionKind) Valid() bool {
	_, ok := actionDescriptions[k]
	return ok
}

// Description returns a human readable label, or the raw kind when unknown.
func (k ActionKind) Description() string {
	if d, ok := actionDescriptions[k]; ok {
		return d
	}
	return string(k)
}

// Unit names what the magnitude of an action is measured in.
func (k ActionKind) Unit() string {
	switch k {
	case ActionAccountAge:
		return "years"
	case ActionUtilization:
		return "percent"
	default:
		return "amount"
	}
}

// ParseActionKind normalises s and checks it against the known kinds.
func ParseActionKind(s string) (ActionKind, error) {
	k := ActionKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return k, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return k, nil
}

// SimulatedAction is one what-if action recorded during a session.
// Impact is computed once when the action is recorded and never recomputed.
type SimulatedAction struct {
	Action       ActionKind      `yaml:"action" json:"action"`
	CurrentValue decimal.Decimal `yaml:"current_value" json:"current_value"`
	NewValue     decimal.Decimal `yaml:"new_value" json:"new_value"`
	Impact       int             `yaml:"impact" json:"impact"`
}

// SimulationStep is a configured action to replay through the simulator.
type SimulationStep struct {
	Action       ActionKind      `yaml:"action" json:"action"`
	CurrentValue decimal.Decimal `yaml:"current_value,omitempty" json:"current_value"`
	NewValue     decimal.Decimal `yaml:"new_value" json:"new_value"`
}

// ActionWeight describes the bound on the points a kind of action can move.
type ActionWeight struct {
	Action      ActionKind `json:"action"`
	Description string     `json:"description"`
	Unit        string     `json:"unit"`
	Cap         int        `json:"cap"`
}

// SimulationReport summarises a replayed list of simulated actions.
type SimulationReport struct {
	BaseScore      decimal.Decimal   `json:"base_score"`
	Actions        []SimulatedAction `json:"actions"`
	TotalImpact    int               `json:"total_impact"`
	ProjectedScore decimal.Decimal   `json:"projected_score"`
	// OutOfRange is set when the projection falls outside [0, MaxScore].
	OutOfRange bool `json:"out_of_range"`
}
