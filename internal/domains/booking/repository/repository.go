package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"skyline/infras/otel"
	"skyline/infras/postgres"
	"skyline/internal/domains/booking/model"
	gDto "skyline/shared/dto"
	gRepo "skyline/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	detail gRepo.Repository[model.BookingDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.BookingDetail](model.EntityName+"_detail", model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error) {
	return r.detail.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
	return r.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}
