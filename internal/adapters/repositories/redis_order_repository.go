package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"restaurant-order/internal/domain"
	"restaurant-order/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOrderRepository keeps each order as a JSON string under
// "<prefix>:order:<id>" and indexes ids in the sorted set
// "<prefix>:orders" scored by negated creation time in milliseconds.
// An ascending range is then newest first, with ties in id order like
// the SQL stores.
type RedisOrderRepository struct {
	Client *redis.Client
	Prefix string
}

func NewRedisOrderRepository(client *redis.Client, prefix string) *RedisOrderRepository {
	if prefix == "" {
		prefix = "restaurant"
	}
	return &RedisOrderRepository{Client: client, Prefix: prefix}
}

type seatRecord struct {
	Number     int     `json:"number"`
	MainCourse *string `json:"main_course,omitempty"`
	Drink      *string `json:"drink,omitempty"`
	Repeated   bool    `json:"repeated"`
}

type orderRecord struct {
	ID        string       `json:"id"`
	Hour      int          `json:"hour"`
	Cuisine   string       `json:"cuisine"`
	PartySize int          `json:"party_size"`
	CreatedAt time.Time    `json:"created_at"`
	Seats     []seatRecord `json:"seats"`
}

func toRecord(o *domain.Order) orderRecord {
	rec := orderRecord{
		ID:        o.ID,
		Hour:      o.Hour,
		Cuisine:   o.Cuisine.String(),
		PartySize: o.PartySize,
		CreatedAt: o.CreatedAt.UTC(),
		Seats:     make([]seatRecord, 0, len(o.Seats)),
	}
	for _, s := range o.Seats {
		sr := seatRecord{Number: s.Number, Repeated: s.Repeated}
		if s.Served {
			main := s.Meal.MainCourse()
			sr.MainCourse = &main
			if d, ok := s.Meal.Drink(); ok {
				sr.Drink = &d
			}
		}
		rec.Seats = append(rec.Seats, sr)
	}
	return rec
}

func fromRecord(rec orderRecord) (*domain.Order, error) {
	cuisine, err := domain.ParseCuisine(rec.Cuisine)
	if err != nil {
		return nil, err
	}
	o := domain.NewOrder(rec.ID, rec.Hour, cuisine, rec.PartySize, rec.CreatedAt)
	for _, sr := range rec.Seats {
		seat := domain.Seat{Number: sr.Number, Repeated: sr.Repeated}
		if sr.MainCourse != nil {
			seat.Served = true
			if sr.Drink != nil {
				seat.Meal = domain.Combo(*sr.MainCourse, *sr.Drink)
			} else {
				seat.Meal = domain.ALaCarte(*sr.MainCourse)
			}
		}
		o.Seats = append(o.Seats, seat)
	}
	return o, nil
}

func (r *RedisOrderRepository) indexKey() string {
	return r.Prefix + ":orders"
}

func (r *RedisOrderRepository) orderKey(id string) string {
	return r.Prefix + ":order:" + id
}

// Store the order document and index it atomically.
func (r *RedisOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) (err error) {
	defer obs.Time(ctx, "orders.redis.SaveOrder")(&err)

	if r.Client == nil {
		return errors.New("redis order repository: client is nil")
	}
	if order == nil || order.ID == "" {
		return errors.New("save order: order id must not be empty")
	}

	data, err := json.Marshal(toRecord(order))
	if err != nil {
		return fmt.Errorf("save order %s: marshal: %w", order.ID, err)
	}

	_, err = r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.orderKey(order.ID), data, 0)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{
			Score:  -float64(order.CreatedAt.UnixMilli()),
			Member: order.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("save order %s: redis tx: %w", order.ID, err)
	}

	return nil
}

// Return up to limit orders, newest first. Index entries whose document
// is gone are skipped.
func (r *RedisOrderRepository) ListOrders(ctx context.Context, limit int) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.redis.ListOrders")(&err)

	if r.Client == nil {
		return nil, errors.New("redis order repository: client is nil")
	}
	if limit <= 0 {
		return []*domain.Order{}, nil
	}

	ids, err := r.Client.ZRange(ctx, r.indexKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list orders: read index: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Order{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.orderKey(id))
	}

	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list orders: read documents: %w", err)
	}

	out := make([]*domain.Order, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var rec orderRecord
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, fmt.Errorf("list orders: decode %q: %w", ids[i], err)
		}
		o, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		out = append(out, o)
	}

	return out, nil
}
