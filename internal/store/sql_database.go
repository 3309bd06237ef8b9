package store

import (
	"database/sql"

	"github.com/MKhiriev/officetool-client/internal/logger"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	_, err := db.Exec(createClientStateTable)
	return err
}
