package queries

import (
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/ainativeclub/portal_api/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Repo holds the database connections. Conn uses the restricted writer
// credential; ConnReaderAdmin uses the privileged credential that
// bypasses row-level access policies, which membership lookups need
// because a caller may not be able to read its own not-yet-approved row.
type Repo struct {
	Conn            *gorm.DB
	ConnReaderAdmin *gorm.DB
}

// NewRepo connects to the database cluster with both credentials
func NewRepo(writer, readerAdmin config.DatabaseConfig) *Repo {
	return &Repo{
		Conn:            connect(writer, "writer"),
		ConnReaderAdmin: connect(readerAdmin, "reader_admin"),
	}
}

func connect(cfg config.DatabaseConfig, alias string) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s application_name=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Name, cfg.SSLmode, cfg.ApplicationName,
	)
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("section", "queries").Str("connection", alias).Msg("Unable to connect to the database")
	}
	return conn
}

// Close both database connections
func (repo *Repo) Close() {
	for alias, conn := range map[string]*gorm.DB{
		"writer":       repo.Conn,
		"reader_admin": repo.ConnReaderAdmin,
	} {
		db, err := conn.DB()
		if err != nil {
			log.Error().Err(err).Str("section", "queries").Str("connection", alias).Msg("Unable to access underlying connection")
			continue
		}
		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("section", "queries").Str("connection", alias).Msg("Unable to close database connection")
		}
	}
}

// IsUniqueViolation reports whether the error is a postgres unique
// constraint violation (SQLSTATE 23505)
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
