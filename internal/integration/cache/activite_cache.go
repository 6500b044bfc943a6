// Package cache implements the activity listing cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/domain/entity"
)

const (
	// ActivitesWithResponsableKey is the Redis key holding the activity listing.
	ActivitesWithResponsableKey = "friendsofmine:activites:with-responsable"
	// ActivitesGenerationKey counts invalidations of the listing. It never expires.
	ActivitesGenerationKey = "friendsofmine:activites:generation"
)

// errStaleListing aborts a populate that lost the race with an invalidation.
var errStaleListing = errors.New("activites listing is stale")

type cachedUtilisateur struct {
	ID        uint      `json:"id"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Email     string    `json:"email"`
	Sexe      string    `json:"sexe"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type cachedActivite struct {
	ID            uint               `json:"id"`
	Titre         string             `json:"titre"`
	Descriptif    string             `json:"descriptif"`
	ResponsableID uint               `json:"responsable_id"`
	Responsable   *cachedUtilisateur `json:"responsable,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// redisActiviteCache implements the adapter.ActiviteCache interface.
type redisActiviteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisActiviteCache creates a Redis-backed activity listing cache.
// A zero ttl keeps the listing until it is invalidated.
func NewRedisActiviteCache(client *redis.Client, ttl time.Duration) adapter.ActiviteCache {
	return &redisActiviteCache{
		client: client,
		ttl:    ttl,
	}
}

// GetAll returns the cached listing and whether it was present.
func (c *redisActiviteCache) GetAll(ctx context.Context) ([]*entity.Activite, bool, error) {
	payload, err := c.client.Get(ctx, ActivitesWithResponsableKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read activites from cache: %w", err)
	}

	var cached []cachedActivite
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached activites: %w", err)
	}

	activites := make([]*entity.Activite, len(cached))
	for i := range cached {
		activites[i] = cached[i].toEntity()
	}
	return activites, true, nil
}

// Generation returns the invalidation counter, zero when never invalidated.
func (c *redisActiviteCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, ActivitesGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read activites cache generation: %w", err)
	}
	return generation, nil
}

// SetAll replaces the cached listing. The write is skipped when the generation
// moved past generation, since the listing may predate the invalidating save.
func (c *redisActiviteCache) SetAll(ctx context.Context, generation int64, activites []*entity.Activite) error {
	cached := make([]cachedActivite, len(activites))
	for i, a := range activites {
		cached[i] = fromEntity(a)
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode activites for cache: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, ActivitesGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleListing
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ActivitesWithResponsableKey, payload, c.ttl)
			return nil
		})
		return err
	}, ActivitesGenerationKey)
	if errors.Is(err, errStaleListing) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to write activites to cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing and bumps the generation so that
// populates started before it are discarded.
func (c *redisActiviteCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, ActivitesGenerationKey)
		pipe.Del(ctx, ActivitesWithResponsableKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate activites cache: %w", err)
	}
	return nil
}

func fromEntity(a *entity.Activite) cachedActivite {
	c := cachedActivite{
		ID:            a.ID,
		Titre:         a.Titre,
		Descriptif:    a.Descriptif,
		ResponsableID: a.ResponsableID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if u := a.Responsable; u != nil {
		c.Responsable = &cachedUtilisateur{
			ID:        u.ID,
			Nom:       u.Nom,
			Prenom:    u.Prenom,
			Email:     u.Email,
			Sexe:      string(u.Sexe),
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		}
	}
	return c
}

func (c cachedActivite) toEntity() *entity.Activite {
	a := &entity.Activite{
		ID:            c.ID,
		Titre:         c.Titre,
		Descriptif:    c.Descriptif,
		ResponsableID: c.ResponsableID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if u := c.Responsable; u != nil {
		a.Responsable = &entity.Utilisateur{
			ID:        u.ID,
			Nom:       u.Nom,
			Prenom:    u.Prenom,
			Email:     u.Email,
			Sexe:      entity.Sexe(u.Sexe),
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		}
	}
	return a
}
