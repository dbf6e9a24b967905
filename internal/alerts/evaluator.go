// Package alerts evaluates user-configured alert rules after a
// synchronization pass and dispatches notifications for rules that
// fire.
package alerts

import (
	"fmt"

	"github.com/bankwatch/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// A Notifier delivers one notification. Delivery is best-effort, a
// failed notification is logged and dropped.
type Notifier interface {
	Notify(subject, body string) error
}

// Evaluator checks the alert rules of an account against newly
// imported operations and the current balance.
//
// The evaluator is stateless on purpose: a condition that stays true
// across passes fires on every pass.
type Evaluator struct {
	db       *gorm.DB
	notifier Notifier
}

// NewEvaluator returns an evaluator storing into db and notifying
// through the given notifier.
func NewEvaluator(db *gorm.DB, notifier Notifier) *Evaluator {
	return &Evaluator{
		db:       db,
		notifier: notifier,
	}
}

// CheckOperations evaluates the transaction alerts of an account
// against a batch of newly inserted operations. One notification is
// sent per matching (rule, operation) pair. Merged duplicates are not
// part of the batch, they are not new transactions.
func (e *Evaluator) CheckOperations(account models.Account, operations []models.Operation) {
	if len(operations) == 0 {
		return
	}

	rules, err := models.AlertsFor(e.db, account.ID, models.AlertTransaction)
	if err != nil {
		log.Error().Err(err).Str("account", account.Number).Msg("loading transaction alerts failed")
		return
	}

	for _, rule := range rules {
		for _, operation := range operations {
			if !rule.TestTransaction(operation) {
				continue
			}

			subject := fmt.Sprintf("Transaction alert on account %s", account.Number)
			body := fmt.Sprintf(
				"Operation %q of %s on %s matched your %s %s limit on account %s (%s).",
				operation.Title,
				operation.Amount.StringFixed(2),
				operation.Date.Format("02/01/2006"),
				rule.Order,
				rule.Limit.StringFixed(2),
				account.Number,
				account.Title,
			)

			e.notify(account, subject, body)
		}
	}
}

// CheckBalance evaluates the balance alerts of an account against its
// current derived balance. It runs once per account per pass, after
// all inserts and merges for that account are done.
func (e *Evaluator) CheckBalance(account models.Account) {
	rules, err := models.AlertsFor(e.db, account.ID, models.AlertBalance)
	if err != nil {
		log.Error().Err(err).Str("account", account.Number).Msg("loading balance alerts failed")
		return
	}

	if len(rules) == 0 {
		return
	}

	balance, err := account.Balance(e.db)
	if err != nil {
		log.Error().Err(err).Str("account", account.Number).Msg("computing balance failed")
		return
	}

	for _, rule := range rules {
		if !rule.TestBalance(balance) {
			continue
		}

		subject := fmt.Sprintf("Balance alert on account %s", account.Number)
		body := fmt.Sprintf(
			"The balance of account %s (%s) is %s, which is %s your limit of %s.",
			account.Number,
			account.Title,
			balance.StringFixed(2),
			direction(rule.Order),
			rule.Limit.StringFixed(2),
		)

		e.notify(account, subject, body)
	}
}

func (e *Evaluator) notify(account models.Account, subject, body string) {
	if err := e.notifier.Notify(subject, body); err != nil {
		log.Error().Err(err).Str("account", account.Number).Msg("sending alert notification failed")
	}
}

func direction(order models.AlertOrder) string {
	if order == models.OrderLess {
		return "below"
	}

	return "above"
}
