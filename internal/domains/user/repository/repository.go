package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"skyline/infras/otel"
	"skyline/infras/postgres"
	"skyline/internal/domains/user/model"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/logger"
	gRepo "skyline/shared/repository"
	"skyline/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	AppendBookingTx(ctx context.Context, tx *sqlx.Tx, userID, bookingID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// AppendBookingTx records bookingID on the owner's booking list inside tx.
func (r *repositoryImpl) AppendBookingTx(ctx context.Context, tx *sqlx.Tx, userID, bookingID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.AppendBookingTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = array_append(%s, :booking_id), %s = :modified_at, %s = :modified_by WHERE %s = :user_id",
		model.TableName, model.FieldBookings, model.FieldBookings, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, map[string]any{
		"booking_id":  bookingID,
		"modified_at": timezone.Now(),
		"modified_by": userID,
		"user_id":     userID,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to append booking (%s): %w", model.EntityName, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("failed to append booking (%s): user %s does not exist", model.EntityName, userID)
	}

	return nil
}
