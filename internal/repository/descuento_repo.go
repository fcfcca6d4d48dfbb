package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sallepos/internal/model"
)

type DescuentoRepository interface {
	// Create deactivates any prior active discount for the same client before
	// inserting, so a client holds at most one active discount.
	Create(ctx context.Context, d *model.DescuentoCliente) error
	FindByID(ctx context.Context, id uint) (*model.DescuentoCliente, error)
	// FindActivoByCliente returns the active, unexpired discount for a client.
	FindActivoByCliente(ctx context.Context, clienteID uint) (*model.DescuentoCliente, error)
	List(ctx context.Context, soloActivos bool) ([]model.DescuentoCliente, error)
	Desactivar(ctx context.Context, id uint) error
	// EliminarPermanente deletes the row outright — used after a discount is
	// consumed by a payment so it can never apply twice.
	EliminarPermanente(ctx context.Context, id uint) error
}

type descuentoRepo struct{ db *gorm.DB }

func NewDescuentoRepository(db *gorm.DB) DescuentoRepository { return &descuentoRepo{db: db} }

func (r *descuentoRepo) Create(ctx context.Context, d *model.DescuentoCliente) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if d.ClienteID != nil {
			if err := tx.Model(&model.DescuentoCliente{}).
				Where("cliente_id = ? AND activo = ?", *d.ClienteID, true).
				Update("activo", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(d).Error
	})
}

func (r *descuentoRepo) FindByID(ctx context.Context, id uint) (*model.DescuentoCliente, error) {
	var d model.DescuentoCliente
	err := r.db.WithContext(ctx).Preload("Cliente").First(&d, id).Error
	return &d, err
}

func (r *descuentoRepo) FindActivoByCliente(ctx context.Context, clienteID uint) (*model.DescuentoCliente, error) {
	var d model.DescuentoCliente
	err := r.db.WithContext(ctx).
		Where("cliente_id = ? AND activo = ?", clienteID, true).
		Where("fecha_fin IS NULL OR fecha_fin >= ?", time.Now()).
		Order("fecha_inicio DESC").
		First(&d).Error
	return &d, err
}

func (r *descuentoRepo) List(ctx context.Context, soloActivos bool) ([]model.DescuentoCliente, error) {
	var descuentos []model.DescuentoCliente
	q := r.db.WithContext(ctx).Preload("Cliente")
	if soloActivos {
		q = q.Where("activo = ?", true)
	}
	err := q.Order("fecha_inicio DESC").Find(&descuentos).Error
	return descuentos, err
}

func (r *descuentoRepo) Desactivar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.DescuentoCliente{}).
		Where("id = ?", id).
		Update("activo", false).Error
}

func (r *descuentoRepo) EliminarPermanente(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.DescuentoCliente{}, id).Error
}
