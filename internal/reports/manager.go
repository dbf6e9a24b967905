// Package reports builds and dispatches the periodic digest reports.
package reports

import (
	"fmt"
	"sync"
	"time"

	"github.com/bankwatch/backend/internal/models"
	"github.com/bankwatch/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// A Dispatcher delivers a rendered report.
type Dispatcher interface {
	Dispatch(subject, text, html string) error
}

// State is the current phase of the report manager.
type State int

const (
	StateIdle State = iota
	StateAggregating
	StateDispatching
)

func (s State) String() string {
	switch s {
	case StateAggregating:
		return "aggregating"
	case StateDispatching:
		return "dispatching"
	}

	return "idle"
}

// AccountReport is the aggregated data for one account inside a
// report: the current balance, the last check and the operations that
// fall into the reporting window.
type AccountReport struct {
	Account    models.Account
	Balance    decimal.Decimal
	Operations []models.Operation
}

// Payload is everything the renderer needs for one report.
type Payload struct {
	Frequency types.Frequency
	Date      time.Time
	Accounts  []AccountReport
}

// Manager generates the daily, weekly and monthly digests. It only
// reads committed state, so it may safely race with an in-flight
// synchronization pass.
type Manager struct {
	db         *gorm.DB
	dispatcher Dispatcher
	now        func() time.Time

	mu    sync.Mutex
	state State
}

// NewManager returns a report manager.
func NewManager(db *gorm.DB, dispatcher Dispatcher) *Manager {
	return &Manager{
		db:         db,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// WithClock replaces the wall clock, used by tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// State returns the current phase of the manager.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Run attempts every frequency tier that is due at the current time.
// Daily reports are always attempted, weekly ones on Mondays and
// monthly ones on the first of the month. A failing tier is logged and
// does not block the other tiers.
func (m *Manager) Run() {
	now := m.now().In(time.UTC)

	for _, frequency := range []types.Frequency{types.FrequencyDaily, types.FrequencyWeekly, types.FrequencyMonthly} {
		if !frequency.Due(now) {
			continue
		}

		if err := m.report(frequency, now); err != nil {
			log.Error().Err(err).Str("frequency", frequency.String()).Msg("report failed")
		}
	}
}

// report builds and dispatches the digest for one frequency tier.
func (m *Manager) report(frequency types.Frequency, now time.Time) error {
	m.setState(StateAggregating)
	defer m.setState(StateIdle)

	alerts, err := models.ReportAlerts(m.db, frequency)
	if err != nil {
		return fmt.Errorf("loading report alerts: %w", err)
	}

	if len(alerts) == 0 {
		log.Debug().Str("frequency", frequency.String()).Msg("no report alerts configured, skipping")
		return nil
	}

	accountIDs := make([]uuid.UUID, 0, len(alerts))
	seen := make(map[uuid.UUID]bool, len(alerts))
	for _, alert := range alerts {
		if !seen[alert.AccountID] {
			seen[alert.AccountID] = true
			accountIDs = append(accountIDs, alert.AccountID)
		}
	}

	accounts, err := models.AccountsByID(m.db, accountIDs)
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}

	if len(accounts) == 0 {
		return nil
	}

	numbers := make([]string, 0, len(accounts))
	for _, account := range accounts {
		numbers = append(numbers, account.Number)
	}

	operations, err := models.OperationsForAccounts(m.db, numbers)
	if err != nil {
		return fmt.Errorf("loading operations: %w", err)
	}

	// The window is [start, now): operations imported (or, for
	// operations without import date, dated) inside it appear in the
	// report.
	start := frequency.WindowStart(now)
	byNumber := make(map[string][]models.Operation)
	for _, operation := range operations {
		date := operation.EffectiveDate()
		if date.Before(start) || !date.Before(now) {
			continue
		}

		byNumber[operation.AccountNumber] = append(byNumber[operation.AccountNumber], operation)
	}

	payload := Payload{
		Frequency: frequency,
		Date:      now,
	}

	for _, account := range accounts {
		balance, err := account.Balance(m.db)
		if err != nil {
			return fmt.Errorf("computing balance for %s: %w", account.Number, err)
		}

		payload.Accounts = append(payload.Accounts, AccountReport{
			Account:    account,
			Balance:    balance,
			Operations: byNumber[account.Number],
		})
	}

	subject, text, html, err := Render(payload)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	m.setState(StateDispatching)

	if err := m.dispatcher.Dispatch(subject, text, html); err != nil {
		return fmt.Errorf("dispatching report: %w", err)
	}

	log.Info().Str("frequency", frequency.String()).Int("accounts", len(payload.Accounts)).Msg("report sent")

	return nil
}
