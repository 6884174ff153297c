package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/toolrent/internal/db"
	"github.com/andy/toolrent/internal/domain"
)

var ErrItemNotFound = errors.New("item not found")

// ItemRepo is a SQLite implementation of ItemRepository
type ItemRepo struct {
	db *db.DB
}

// NewItemRepo creates a new ItemRepo
func NewItemRepo(database *db.DB) *ItemRepo {
	return &ItemRepo{db: database}
}

// List retrieves all items ordered by code
func (r *ItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	query := `
		SELECT code, type, brand, daily_fee, weekday_charge, weekend_charge, holiday_charge
		FROM items
		ORDER BY code
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.Code,
			&item.Type,
			&item.Brand,
			&item.DailyFee,
			&item.WeekdayCharge,
			&item.WeekendCharge,
			&item.HolidayCharge,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// GetByCode retrieves an item by code
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*domain.Item, error) {
	query := `
		SELECT code, type, brand, daily_fee, weekday_charge, weekend_charge, holiday_charge
		FROM items
		WHERE code = ?
	`

	item := &domain.Item{}
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&item.Code,
		&item.Type,
		&item.Brand,
		&item.DailyFee,
		&item.WeekdayCharge,
		&item.WeekendCharge,
		&item.HolidayCharge,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// Upsert inserts an item or replaces the one with the same code
func (r *ItemRepo) Upsert(ctx context.Context, item domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid item: %w", err)
	}

	query := `
		INSERT INTO items (code, type, brand, daily_fee, weekday_charge, weekend_charge, holiday_charge, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			type = excluded.type,
			brand = excluded.brand,
			daily_fee = excluded.daily_fee,
			weekday_charge = excluded.weekday_charge,
			weekend_charge = excluded.weekend_charge,
			holiday_charge = excluded.holiday_charge,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		item.Code,
		item.Type,
		item.Brand,
		item.DailyFee,
		item.WeekdayCharge,
		item.WeekendCharge,
		item.HolidayCharge,
		formatTime(),
	)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	return nil
}

// Delete removes an item by code
func (r *ItemRepo) Delete(ctx context.Context, code string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, code)
	}

	return nil
}
