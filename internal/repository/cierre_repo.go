package repository

import (
	"context"

	"gorm.io/gorm"

	"sallepos/internal/model"
)

type CierreRepository interface {
	Create(ctx context.Context, c *model.CierreCaja) error
	List(ctx context.Context, limit int) ([]model.CierreCaja, error)
	ListByCajero(ctx context.Context, cajeroID uint, limit int) ([]model.CierreCaja, error)
}

type cierreRepo struct{ db *gorm.DB }

func NewCierreRepository(db *gorm.DB) CierreRepository { return &cierreRepo{db: db} }

func (r *cierreRepo) Create(ctx context.Context, c *model.CierreCaja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cierreRepo) List(ctx context.Context, limit int) ([]model.CierreCaja, error) {
	var cierres []model.CierreCaja
	err := r.db.WithContext(ctx).
		Order("fecha_cierre DESC").
		Limit(limit).
		Find(&cierres).Error
	return cierres, err
}

func (r *cierreRepo) ListByCajero(ctx context.Context, cajeroID uint, limit int) ([]model.CierreCaja, error) {
	var cierres []model.CierreCaja
	err := r.db.WithContext(ctx).
		Where("cajero_id = ?", cajeroID).
		Order("fecha_cierre DESC").
		Limit(limit).
		Find(&cierres).Error
	return cierres, err
}
