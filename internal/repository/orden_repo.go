package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"sallepos/internal/model"
)

// ErrOrdenNoEncontrada is returned when an order key is missing or expired.
var ErrOrdenNoEncontrada = errors.New("Orden no encontrada")

const keyOrden = "orden:"

// OrdenRepository keeps open orders in Redis until they are paid or cancelled.
type OrdenRepository interface {
	Save(ctx context.Context, o *model.Orden) error
	Get(ctx context.Context, ordenID string) (*model.Orden, error)
	Delete(ctx context.Context, ordenID string) error
	// ListAll scans every live order key. The keyspace holds at most a few
	// dozen open orders, so SCAN with a small page is plenty.
	ListAll(ctx context.Context) ([]model.Orden, error)
}

type ordenRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOrdenRepository(rdb *redis.Client, ttl time.Duration) OrdenRepository {
	return &ordenRepo{rdb: rdb, ttl: ttl}
}

func (r *ordenRepo) Save(ctx context.Context, o *model.Orden) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyOrden+o.OrdenID, data, r.ttl).Err()
}

func (r *ordenRepo) Get(ctx context.Context, ordenID string) (*model.Orden, error) {
	data, err := r.rdb.Get(ctx, keyOrden+ordenID).Bytes()
	if err == redis.Nil {
		return nil, ErrOrdenNoEncontrada
	}
	if err != nil {
		return nil, err
	}
	var o model.Orden
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ordenRepo) Delete(ctx context.Context, ordenID string) error {
	return r.rdb.Del(ctx, keyOrden+ordenID).Err()
}

func (r *ordenRepo) ListAll(ctx context.Context) ([]model.Orden, error) {
	var ordenes []model.Orden
	iter := r.rdb.Scan(ctx, 0, keyOrden+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := r.rdb.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue // expired between SCAN and GET
		}
		if err != nil {
			return nil, err
		}
		var o model.Orden
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, err
		}
		ordenes = append(ordenes, o)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ordenes, nil
}
