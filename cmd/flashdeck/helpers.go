package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hellodocs/flashdeck/internal/api"
	"github.com/hellodocs/flashdeck/internal/config"
	"github.com/hellodocs/flashdeck/internal/progress"
	"github.com/hellodocs/flashdeck/internal/session"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newAPIClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
}

// restoreSessionStore replaces the mobile app's startup restoration: the
// persisted session is read synchronously before any command logic runs.
func restoreSessionStore(cfg *config.Config) (*session.Store, error) {
	store := session.NewStore(cfg.Session.File)
	if err := store.Restore(); err != nil {
		return nil, fmt.Errorf("store.Restore > %w", err)
	}
	return store, nil
}

// The guest ledger lives in memory while a command runs; between runs it
// is snapshotted next to the session file so progress made while
// browsing as a guest survives until login migrates it.
func ledgerPath(cfg *config.Config) string {
	return filepath.Join(filepath.Dir(cfg.Session.File), "guest-progress.json")
}

func loadLedger(cfg *config.Config) (*progress.Ledger, error) {
	data, err := os.ReadFile(ledgerPath(cfg))
	if errors.Is(err, os.ErrNotExist) {
		return progress.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", ledgerPath(cfg), err)
	}

	var records []progress.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return progress.NewLedger(), nil
	}
	return progress.NewLedgerFromRecords(records), nil
}

func saveLedger(cfg *config.Config, ledger *progress.Ledger) error {
	path := ledgerPath(cfg)
	if ledger.Count() == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("os.Remove(%s) > %w", path, err)
		}
		return nil
	}

	data, err := json.Marshal(ledger.Records())
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
