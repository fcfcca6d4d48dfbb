package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"sallepos/internal/model"
)

// ErrSesionNoEncontrada is returned when a session key is missing or expired.
var ErrSesionNoEncontrada = errors.New("Sesión no válida o expirada")

const (
	keySesion      = "session:"
	keyCaja        = "caja:"
	keyCajaInicial = "caja_inicial:"
	keyFechaInicio = "fecha_inicio:"
)

// fechaInicioLayout is the wall-clock format stored for the shift start.
const fechaInicioLayout = "2006-01-02 15:04:05"

// SesionRepository keeps worker sessions and the cash drawer in Redis. All
// keys for one session share the same TTL; drawer writes refresh it so an
// active terminal never expires mid-shift.
type SesionRepository interface {
	SaveSesion(ctx context.Context, sessionID string, e *model.Empleado) error
	GetSesion(ctx context.Context, sessionID string) (*model.Empleado, error)

	SetCaja(ctx context.Context, sessionID string, monto decimal.Decimal) error
	GetCaja(ctx context.Context, sessionID string) (decimal.Decimal, bool, error)
	// IncrementarCaja applies a delta atomically via INCRBYFLOAT and returns
	// the new balance. Concurrent payments on the same drawer never lose an
	// update.
	IncrementarCaja(ctx context.Context, sessionID string, delta decimal.Decimal) (decimal.Decimal, error)

	SetCajaInicial(ctx context.Context, sessionID string, monto decimal.Decimal) error
	GetCajaInicial(ctx context.Context, sessionID string) (decimal.Decimal, bool, error)

	SetFechaInicio(ctx context.Context, sessionID string, t time.Time) error
	GetFechaInicio(ctx context.Context, sessionID string) (time.Time, bool, error)

	// LimpiarSesion removes the session and all drawer keys. This is the
	// only teardown of ephemeral state; closing the drawer does not delete.
	LimpiarSesion(ctx context.Context, sessionID string) error
}

type sesionRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSesionRepository(rdb *redis.Client, ttl time.Duration) SesionRepository {
	return &sesionRepo{rdb: rdb, ttl: ttl}
}

func (r *sesionRepo) SaveSesion(ctx context.Context, sessionID string, e *model.Empleado) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keySesion+sessionID, data, r.ttl).Err()
}

func (r *sesionRepo) GetSesion(ctx context.Context, sessionID string) (*model.Empleado, error) {
	data, err := r.rdb.Get(ctx, keySesion+sessionID).Bytes()
	if err == redis.Nil {
		return nil, ErrSesionNoEncontrada
	}
	if err != nil {
		return nil, err
	}
	var e model.Empleado
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *sesionRepo) SetCaja(ctx context.Context, sessionID string, monto decimal.Decimal) error {
	return r.rdb.Set(ctx, keyCaja+sessionID, monto.String(), r.ttl).Err()
}

func (r *sesionRepo) GetCaja(ctx context.Context, sessionID string) (decimal.Decimal, bool, error) {
	return r.getDecimal(ctx, keyCaja+sessionID)
}

func (r *sesionRepo) IncrementarCaja(ctx context.Context, sessionID string, delta decimal.Decimal) (decimal.Decimal, error) {
	f, _ := delta.Float64()
	nuevo, err := r.rdb.IncrByFloat(ctx, keyCaja+sessionID, f).Result()
	if err != nil {
		return decimal.Zero, err
	}
	// Keep the drawer keys alive while the terminal is in use
	pipe := r.rdb.Pipeline()
	pipe.Expire(ctx, keyCaja+sessionID, r.ttl)
	pipe.Expire(ctx, keyCajaInicial+sessionID, r.ttl)
	pipe.Expire(ctx, keyFechaInicio+sessionID, r.ttl)
	pipe.Expire(ctx, keySesion+sessionID, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(nuevo).Round(2), nil
}

func (r *sesionRepo) SetCajaInicial(ctx context.Context, sessionID string, monto decimal.Decimal) error {
	return r.rdb.Set(ctx, keyCajaInicial+sessionID, monto.String(), r.ttl).Err()
}

func (r *sesionRepo) GetCajaInicial(ctx context.Context, sessionID string) (decimal.Decimal, bool, error) {
	return r.getDecimal(ctx, keyCajaInicial+sessionID)
}

func (r *sesionRepo) SetFechaInicio(ctx context.Context, sessionID string, t time.Time) error {
	return r.rdb.Set(ctx, keyFechaInicio+sessionID, t.Format(fechaInicioLayout), r.ttl).Err()
}

func (r *sesionRepo) GetFechaInicio(ctx context.Context, sessionID string) (time.Time, bool, error) {
	val, err := r.rdb.Get(ctx, keyFechaInicio+sessionID).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err := time.ParseInLocation(fechaInicioLayout, val, time.Local)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

func (r *sesionRepo) LimpiarSesion(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx,
		keySesion+sessionID,
		keyCaja+sessionID,
		keyCajaInicial+sessionID,
		keyFechaInicio+sessionID,
	).Err()
}

func (r *sesionRepo) getDecimal(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, err
	}
	return d.Round(2), true, nil
}
