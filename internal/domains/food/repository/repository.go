package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"skyline/infras/otel"
	"skyline/infras/postgres"
	"skyline/internal/domains/food/model"
	gDto "skyline/shared/dto"
	gRepo "skyline/shared/repository"
)

type Food interface {
	Insert(ctx context.Context, model model.Food) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Food, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Food, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Food]
}

func New(db *postgres.Connection, otel otel.Otel) Food {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Food](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
