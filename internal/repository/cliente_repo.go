package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sallepos/internal/model"
)

// ErrClienteNoEncontrado is returned when a loyalty client id does not exist.
var ErrClienteNoEncontrado = errors.New("Cliente no encontrado")

// ErrPuntosInsuficientes is returned when a deduction would leave the
// balance negative. Catches concurrent redemptions that both passed the
// service-level read.
var ErrPuntosInsuficientes = errors.New("Puntos insuficientes")

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	FindByCorreo(ctx context.Context, correo string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, id uint) error
	// AgregarPuntos increments the accumulated points and stamps ultima_visita.
	// Runs inside tx so points accrual commits atomically with the sale row.
	AgregarPuntos(ctx context.Context, tx *gorm.DB, clienteID uint, puntos int) error
	// DescontarPuntos deducts points for a loyalty redemption inside tx.
	// Returns ErrPuntosInsuficientes when the stored balance no longer covers
	// the deduction, so the enclosing transaction rolls back.
	DescontarPuntos(ctx context.Context, tx *gorm.DB, clienteID uint, puntos int) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) FindByCorreo(ctx context.Context, correo string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("correo = ?", correo).First(&c).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

func (r *clienteRepo) AgregarPuntos(ctx context.Context, tx *gorm.DB, clienteID uint, puntos int) error {
	now := time.Now()
	return tx.WithContext(ctx).Model(&model.Cliente{}).
		Where("id = ?", clienteID).
		Updates(map[string]interface{}{
			"puntos_acumulados": gorm.Expr("puntos_acumulados + ?", puntos),
			"ultima_visita":     now,
		}).Error
}

func (r *clienteRepo) DescontarPuntos(ctx context.Context, tx *gorm.DB, clienteID uint, puntos int) error {
	now := time.Now()
	res := tx.WithContext(ctx).Model(&model.Cliente{}).
		Where("id = ? AND puntos_acumulados >= ?", clienteID, puntos).
		Updates(map[string]interface{}{
			"puntos_acumulados": gorm.Expr("puntos_acumulados - ?", puntos),
			"ultima_visita":     now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPuntosInsuficientes
	}
	return nil
}
