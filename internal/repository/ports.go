package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetWhere(ctx context.Context, conditions map[string]any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, order string, entities any) error
	UpdateWhere(ctx context.Context, model any, conditions map[string]any, fields map[string]any) (int64, error)
	DeleteWhere(ctx context.Context, model any, conditions map[string]any) (int64, error)
}
