package cache

import (
	"context"

	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/domain/entity"
)

// noopActiviteCache never holds anything; used when Redis is not configured.
type noopActiviteCache struct{}

// NewNoopActiviteCache creates a cache that always misses.
func NewNoopActiviteCache() adapter.ActiviteCache {
	return noopActiviteCache{}
}

func (noopActiviteCache) GetAll(context.Context) ([]*entity.Activite, bool, error) {
	return nil, false, nil
}

func (noopActiviteCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (noopActiviteCache) SetAll(context.Context, int64, []*entity.Activite) error {
	return nil
}

func (noopActiviteCache) Invalidate(context.Context) error {
	return nil
}
