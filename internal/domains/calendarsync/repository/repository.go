package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tourbase/infras/otel"
	"tourbase/infras/postgres"
	"tourbase/internal/domains/calendarsync/model"
	gDto "tourbase/shared/dto"
	gRepo "tourbase/shared/repository"
)

type CalendarSync interface {
	Insert(ctx context.Context, model model.CalendarSync) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CalendarSync, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CalendarSync, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CalendarSync]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CalendarSync {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CalendarSync](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
