// Package synchronizer fetches the current state of every registered
// bank access and reconciles it against the stored operations.
package synchronizer

import (
	"context"
	"fmt"
	"time"

	"github.com/bankwatch/backend/internal/alerts"
	"github.com/bankwatch/backend/internal/models"
	"github.com/bankwatch/backend/internal/provider"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Engine is the synchronization engine. One pass walks all accesses
// strictly sequentially to bound the load on the scraping backend and
// to keep writes to one account's operation set serialized.
type Engine struct {
	db        *gorm.DB
	provider  provider.Provider
	evaluator *alerts.Evaluator
	types     *models.TypeMap
	timeout   time.Duration
	now       func() time.Time
}

// New returns an engine. The timeout bounds a single access fetch so
// that one hanging bank connection cannot stall the whole pass.
func New(db *gorm.DB, p provider.Provider, evaluator *alerts.Evaluator, types *models.TypeMap, timeout time.Duration) *Engine {
	return &Engine{
		db:        db,
		provider:  p,
		evaluator: evaluator,
		types:     types,
		timeout:   timeout,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock, used by tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// SynchronizeAll runs one pass over every access. A failing access is
// logged and skipped, the remaining accesses are still processed.
func (e *Engine) SynchronizeAll(ctx context.Context) {
	log.Info().Msg("checking new operations for all bank accesses")

	accesses, err := models.Accesses(e.db)
	if err != nil {
		log.Error().Err(err).Msg("loading accesses failed, aborting pass")
		return
	}

	for _, access := range accesses {
		if err := e.synchronizeAccess(ctx, access); err != nil {
			log.Error().Err(err).Str("bank", access.Bank).Str("login", access.Login).Msg("access synchronization failed")
		}
	}

	log.Info().Msg("all accesses have been polled")
}

// synchronizeAccess fetches one access and reconciles every account it
// reports. A persistence failure aborts only the affected account.
func (e *Engine) synchronizeAccess(ctx context.Context, access models.Access) error {
	fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	result, err := e.provider.Fetch(fetchCtx, provider.Credentials{
		Bank:     access.Bank,
		Login:    access.Login,
		Password: access.Password,
		Website:  access.Website,
	})
	if err != nil {
		return err
	}

	rules, err := models.CategoryRules(e.db)
	if err != nil {
		return fmt.Errorf("loading category rules: %w", err)
	}

	accounts, err := e.matchAccounts(access, result)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		err := e.reconcileAccount(account, result.Operations[account.Number], rules)
		if err != nil {
			log.Error().Err(err).Str("account", account.Number).Msg("account reconciliation failed")
		}
	}

	return nil
}

// matchAccounts pairs the fetched accounts with the stored ones by
// account number. Accounts the backend reports for the first time are
// created; the initial balance is chosen so that the derived balance
// matches the balance the bank reports once the fetched operations are
// stored.
func (e *Engine) matchAccounts(access models.Access, result provider.Result) ([]models.Account, error) {
	stored, err := models.AccountsForAccess(e.db, access.ID)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	byNumber := make(map[string]models.Account, len(stored))
	for _, account := range stored {
		byNumber[account.Number] = account
	}

	accounts := make([]models.Account, 0, len(result.Accounts))
	for _, fetched := range result.Accounts {
		if account, ok := byNumber[fetched.Number]; ok {
			accounts = append(accounts, account)
			continue
		}

		initial := fetched.Balance
		for _, operation := range result.Operations[fetched.Number] {
			initial = initial.Sub(operation.Amount)
		}

		account := models.Account{
			AccessID:       access.ID,
			Bank:           fetched.Bank,
			Title:          fetched.Title,
			Number:         fetched.Number,
			IBAN:           fetched.IBAN,
			InitialBalance: initial,
		}

		if err := e.db.Create(&account).Error; err != nil {
			log.Error().Err(err).Str("account", fetched.Number).Msg("creating discovered account failed")
			continue
		}

		log.Info().Str("account", account.Number).Str("title", account.Title).Msg("discovered new account")
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// reconcileAccount decides for every fetched operation whether it is
// new or a re-observation of a stored one.
//
// New operations are inserted with the import date set to now and run
// through the category rules. Duplicates are merged field by field,
// the stored side wins. Only inserted operations count as new for the
// alert evaluator.
func (e *Engine) reconcileAccount(account models.Account, fetched []provider.Operation, rules []models.CategoryRule) error {
	var inserted []models.Operation

	for _, f := range fetched {
		operation := models.Operation{
			AccountNumber: account.Number,
			Title:         f.Title,
			Date:          f.Date.In(time.UTC),
			Amount:        f.Amount.Round(2),
			Raw:           f.Raw,
			TypeID:        e.types.ID(f.TypeID),
		}

		duplicate, err := operation.FindDuplicate(e.db)
		if err != nil {
			return fmt.Errorf("fingerprint lookup: %w", err)
		}

		if duplicate != nil {
			if err := duplicate.MergeFrom(e.db, operation); err != nil {
				return fmt.Errorf("merging duplicate: %w", err)
			}
			continue
		}

		operation.ImportedAt = e.now().In(time.UTC)
		if operation.CategoryID == nil {
			operation.CategoryID = models.Categorize(rules, operation.Raw)
		}

		if err := e.db.Create(&operation).Error; err != nil {
			return fmt.Errorf("inserting operation: %w", err)
		}

		inserted = append(inserted, operation)
	}

	now := e.now().In(time.UTC)
	account.LastChecked = &now
	if err := e.db.Model(&account).Update("LastChecked", &now).Error; err != nil {
		return fmt.Errorf("updating last checked: %w", err)
	}

	log.Info().Str("account", account.Number).Int("fetched", len(fetched)).Int("new", len(inserted)).Msg("account reconciled")

	e.evaluator.CheckOperations(account, inserted)
	e.evaluator.CheckBalance(account)

	return nil
}
