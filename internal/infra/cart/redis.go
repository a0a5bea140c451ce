package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campus-reserve/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Line is one equipment selection parked in a user's cart before checkout.
type Line struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Quantity    int       `json:"quantity"`
}

// Store holds per-user carts in redis. A cart is scratch state, not a hold:
// it reserves nothing and expires on its own.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func cartKey(userID uuid.UUID) string { return fmt.Sprintf("cart:%s", userID) }

func (s *Store) Load(ctx context.Context, userID uuid.UUID) ([]Line, error) {
	raw, err := s.rdb.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Line{}, nil
		}
		return nil, errs.Wrap(err, "failed to load cart")
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, errs.Wrap(err, "failed to decode cart")
	}
	return lines, nil
}

func (s *Store) Save(ctx context.Context, userID uuid.UUID, lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := s.rdb.Set(ctx, cartKey(userID), raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save cart")
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return errs.Wrap(err, "failed to clear cart")
	}
	return nil
}
