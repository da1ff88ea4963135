package featured

import (
	"context"
	"errors"
	"fmt"

	"github.com/daltekdz/daltekdz_bot/internal/kv"
	"github.com/daltekdz/daltekdz_bot/internal/model"
)

// Repository хранит список продвижений целиком
type Repository interface {
	Load(ctx context.Context) ([]model.FeaturedStore, error)
	Save(ctx context.Context, list []model.FeaturedStore) error
}

// KVRepository хранит список одним JSON-блобом под ключом featuredStores
type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

// Load читает список. Отсутствующий ключ означает пустой список.
func (r *KVRepository) Load(ctx context.Context) ([]model.FeaturedStore, error) {
	var list []model.FeaturedStore
	err := kv.GetJSON(ctx, r.store, kv.KeyFeaturedStores, &list)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []model.FeaturedStore{}, nil
		}
		return nil, fmt.Errorf("load featured stores: %w", err)
	}
	if list == nil {
		list = []model.FeaturedStore{}
	}
	return list, nil
}

// Save перезаписывает список целиком
func (r *KVRepository) Save(ctx context.Context, list []model.FeaturedStore) error {
	if list == nil {
		list = []model.FeaturedStore{}
	}
	if err := kv.SetJSON(ctx, r.store, kv.KeyFeaturedStores, list); err != nil {
		return fmt.Errorf("save featured stores: %w", err)
	}
	return nil
}
