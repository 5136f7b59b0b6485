package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lekha1657/fedfproject/internal/persistence"
)

// AccountRepository stores every credential record inside a single document
// keyed by lowercased email.
type AccountRepository struct {
	store *Store
}

// NewAccountRepository creates an AccountRepository backed by the store.
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// GetAccount retrieves the account registered under email.
func (r *AccountRepository) GetAccount(ctx context.Context, email string) (persistence.UserAccount, error) {
	accounts, err := r.load(ctx)
	if err != nil {
		return persistence.UserAccount{}, err
	}

	account, ok := accounts[normalizeEmail(email)]
	if !ok {
		return persistence.UserAccount{}, persistence.ErrNotFound
	}
	return account, nil
}

// PutAccount inserts or replaces the account stored under its email.
func (r *AccountRepository) PutAccount(ctx context.Context, account persistence.UserAccount) error {
	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}

	accounts[normalizeEmail(account.Email)] = account
	if err := r.store.storeValue(ctx, keyAccounts, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func (r *AccountRepository) load(ctx context.Context) (map[string]persistence.UserAccount, error) {
	accounts := map[string]persistence.UserAccount{}
	if _, err := r.store.loadValue(ctx, keyAccounts, &accounts); err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if accounts == nil {
		accounts = map[string]persistence.UserAccount{}
	}
	return accounts, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
