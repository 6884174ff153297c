package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"github.com/andy/toolrent/internal/domain"
)

// ItemRepository manages catalog item persistence
type ItemRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByCode(ctx context.Context, code string) (*domain.Item, error) // Returns nil if not found
	Upsert(ctx context.Context, item domain.Item) error
	Delete(ctx context.Context, code string) error
}
