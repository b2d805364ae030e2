package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dsousa/barber-ledger/internal/infra/storage/snapshot"
	"github.com/dsousa/barber-ledger/pkg/psqlbuilder"
)

// Store хранилище снапшотов поверх PostgreSQL.
// Каждый слот это одна строка таблицы snapshots, Save выполняет upsert
// с полной заменой payload (семантика та же, что у файлового backend).
type Store struct {
	db *sql.DB
}

// NewStore создает хранилище снапшотов поверх подключения к БД
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init создает таблицу snapshots, если её ещё нет
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			slot       TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("%w: Init - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Load читает содержимое слота
func (s *Store) Load(ctx context.Context, slot string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("payload").
		From("snapshots").
		Where(squirrel.Eq{"slot": slot}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, snapshot.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan payload: %v", ErrScanRow, err)
	}

	return payload, nil
}

// Save полностью перезаписывает слот
func (s *Store) Save(ctx context.Context, slot string, payload []byte) error {
	query, args, err := psqlbuilder.Insert("snapshots").
		Columns("slot", "payload").
		Values(slot, payload).
		Suffix("ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
