package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"skyline/config"
	"skyline/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// connectionString targets the write pool, where schema changes belong.
func connectionString(config *config.Config) string {
	pg := config.DB.Postgres

	query := url.Values{}
	query.Set("sslmode", pg.Write.SSLMode)

	if pg.MigrationTable != "" {
		query.Set("x-migrations-table", pg.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Write.Username, pg.Write.Password),
		Host:     net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		Path:     getDBName(config, pg.Write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, migrations.Dir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrator")
		}
	}()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDown:
		err = mig.Steps(-1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration completed")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
