package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

type GormDB struct {
	DB *gorm.DB
}

func NewGormDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// note bodies and pictures are too large to log per statement
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

// Create inserts record and fills in its generated columns.
func (f *GormDB) Create(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetWhere loads the first record matching every condition.
func (f *GormDB) GetWhere(ctx context.Context, conditions map[string]any, entity any) error {
	err := f.DB.WithContext(ctx).Where(conditions).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}
	return nil
}

// GetAllBy loads every record whose column equals value, sorted by order.
func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, order string, entities any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

// UpdateWhere applies fields to the rows of model matching conditions and
// reports how many rows changed.
func (f *GormDB) UpdateWhere(ctx context.Context, model any, conditions map[string]any, fields map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(conditions).Updates(fields)
	if tx.Error != nil {
		return 0, fmt.Errorf("update table: %w", translate(tx.Error))
	}
	return tx.RowsAffected, nil
}

// DeleteWhere removes the rows of model matching conditions and reports how
// many rows were removed.
func (f *GormDB) DeleteWhere(ctx context.Context, model any, conditions map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(conditions).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete from table: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}
