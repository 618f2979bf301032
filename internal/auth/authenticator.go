// Package auth coordinates identity: login, registration, logout, and the
// one-time migration of guest progress that rides along with both.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hellodocs/flashdeck/internal/api"
	"github.com/hellodocs/flashdeck/internal/progress"
	"github.com/hellodocs/flashdeck/internal/session"
)

// ErrNotAuthenticated is returned by operations that need an active
// session while the client is in guest mode.
var ErrNotAuthenticated = errors.New("not authenticated")

// API is the slice of the REST client the authenticator depends on.
//
//go:generate mockgen -source=authenticator.go -destination=../mocks/auth/mock_api.go -package=mock_auth
type API interface {
	Login(ctx context.Context, username, password string) (session.Session, error)
	Register(ctx context.Context, profile api.RegisterRequest) (session.Session, error)
	SendProgressBatch(ctx context.Context, token string, records []progress.Record) error
}

// Profile is a registration form, validated locally before the request
// is sent.
type Profile struct {
	Username        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// Authenticator owns the guest→authenticated transition. It is an
// explicit context object: the API client, session store, and guest
// ledger are injected rather than reached through globals.
type Authenticator struct {
	api    API
	store  *session.Store
	ledger *progress.Ledger
	logger *slog.Logger
}

func NewAuthenticator(apiClient API, store *session.Store, ledger *progress.Ledger) *Authenticator {
	return &Authenticator{
		api:    apiClient,
		store:  store,
		ledger: ledger,
		logger: slog.Default(),
	}
}

// Login authenticates, migrates any guest progress best-effort, and
// persists the new session. The returned suffix describes the migration
// outcome for display after "Logged in as <user>"; it is empty when the
// ledger was empty. A migration failure does not abort the login and
// leaves the ledger intact for a manual retry.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	sess, err := a.api.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	return a.establish(ctx, sess)
}

// Register validates the profile locally, creates the account, migrates
// any guest progress best-effort, and persists the new session. Returns
// the same migration suffix as Login.
func (a *Authenticator) Register(ctx context.Context, profile Profile) (string, error) {
	if err := validateProfile(profile); err != nil {
		return "", err
	}

	sess, err := a.api.Register(ctx, api.RegisterRequest{
		Username: profile.Username,
		Email:    profile.Email,
		Password: profile.Password,
	})
	if err != nil {
		return "", err
	}
	return a.establish(ctx, sess)
}

func (a *Authenticator) establish(ctx context.Context, sess session.Session) (string, error) {
	message := ""
	if count := a.ledger.Count(); count > 0 {
		if err := a.ledger.Migrate(ctx, a.api, sess.Token); err != nil {
			a.logger.Warn("failed to migrate guest progress", "count", count, "error", err)
			message = " (some progress may not have been saved)"
		} else {
			message = fmt.Sprintf(" (%d progress records saved)", count)
		}
	}

	if err := a.store.Save(sess); err != nil {
		return "", fmt.Errorf("store.Save > %w", err)
	}
	return message, nil
}

// Logout clears the in-memory session and removes the persisted entry.
// Logging out in guest mode is a no-op.
func (a *Authenticator) Logout() error {
	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("store.Clear > %w", err)
	}
	return nil
}

// Token returns the current credential, or "" in guest mode.
func (a *Authenticator) Token() string {
	return a.store.Token()
}

// RetryMigration re-sends a previously failed guest-progress migration
// using the active session. It is the manual retry hook: migration is
// never retried automatically. Returns the number of records migrated.
func (a *Authenticator) RetryMigration(ctx context.Context) (int, error) {
	if a.store.IsGuest() {
		return 0, ErrNotAuthenticated
	}
	count := a.ledger.Count()
	if count == 0 {
		return 0, nil
	}
	if err := a.ledger.Migrate(ctx, a.api, a.store.Token()); err != nil {
		return 0, fmt.Errorf("ledger.Migrate > %w", err)
	}
	return count, nil
}
