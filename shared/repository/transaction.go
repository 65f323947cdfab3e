package repository

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"fmt"
	"skyline/infras/otel"
	"skyline/infras/postgres"
	"skyline/shared/constant"
	"skyline/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Transactor runs fn inside a single write transaction. The transaction is committed
// when fn returns nil and rolled back otherwise.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type transactorImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewTransactor(db *postgres.Connection, otel otel.Otel) Transactor {
	return &transactorImpl{db: db, otel: otel}
}

func (t *transactorImpl) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".WithTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
