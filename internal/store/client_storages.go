package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/officetool-client/internal/config"
	"github.com/MKhiriev/officetool-client/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [StateRepository]; additional repositories can be added here as the feature
// set grows.
type ClientStorages struct {
	// StateRepository is the SQLite-backed key-value repository for small
	// client state (last-used session, saved chat settings).
	StateRepository StateRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Ensures the client_state schema exists via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [StateRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		StateRepository: NewLocalStateRepository(db, logger),
	}, nil
}
