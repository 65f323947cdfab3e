package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"skyline/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresDriverName        = "postgres"
)

var ErrConnectionFailed = errors.New("failed connecting to database")

// Connection holds the read and write pools. Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) (*Connection, error) {
	pg := config.DB.Postgres

	write, err := connect("write", withPrefix(config, pg.Write), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	read, err := connect("read", withPrefix(config, pg.Read), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// withPrefix applies DB_POSTGRES_PREFIX to the node's database name.
func withPrefix(cfg *config.Config, node config.PostgresNode) config.PostgresNode {
	node.Name = cfg.DB.Postgres.Prefix + node.Name

	return node
}

// DSN builds a lib/pq connection url. Also used by the migrator.
func DSN(username, password, host, port, dbName, sslMode, timezone string) string {
	query := url.Values{}
	if sslMode != "" {
		query.Set("sslmode", sslMode)
	}

	if timezone != "" {
		query.Set("timezone", timezone)
	}

	dsn := url.URL{
		Scheme:   postgresDriverName,
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(name string, node config.PostgresNode, maxRetry, waitTime int) (*sqlx.DB, error) {
	descriptor := DSN(node.Username, node.Password, node.Host, node.Port, node.Name, node.SSLMode, node.Timezone)
	attempts := max(maxRetry, 1)

	var err error

	for retry := range attempts {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect(postgresDriverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", node.Host).
				Str("port", node.Port).
				Str("dbName", node.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", node.Host).
			Str("port", node.Port).
			Str("dbName", node.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("%w (%s): %w", ErrConnectionFailed, name, err)
}
