package salonconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/pkg/dbmetrics"
	"github.com/lockenroll/LR-SalonService/pkg/psqlbuilder"
)

// Конфигурация салона хранится одной JSONB-строкой (id = 1) и заменяется
// целиком. Читатели видят либо старую, либо новую версию, частичных
// обновлений не бывает.
const configRowID = 1

// Repository репозиторий конфигурации салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load читает текущую конфигурацию салона
func (r *Repository) Load(ctx context.Context) (*domain.SalonConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("data").
		From("salon_config").
		Where(squirrel.Eq{"id": configRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute select: %v", ErrExecQuery, err)
	}

	var cfg domain.SalonConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal config: %v", ErrDecode, err)
	}

	return &cfg, nil
}

// Save заменяет конфигурацию целиком (upsert единственной строки)
func (r *Repository) Save(ctx context.Context, cfg *domain.SalonConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal config: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("salon_config").
		Columns("id", "data").
		Values(configRowID, raw).
		Suffix("ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
