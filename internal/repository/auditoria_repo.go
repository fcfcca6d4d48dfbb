package repository

import (
	"context"

	"gorm.io/gorm"

	"sallepos/internal/model"
)

// AuditoriaRepository is insert-only: terminal order transitions are recorded
// and never updated.
type AuditoriaRepository interface {
	Create(ctx context.Context, a *model.AuditoriaOrden) error
	ListByOrden(ctx context.Context, ordenID string) ([]model.AuditoriaOrden, error)
}

type auditoriaRepo struct{ db *gorm.DB }

func NewAuditoriaRepository(db *gorm.DB) AuditoriaRepository { return &auditoriaRepo{db: db} }

func (r *auditoriaRepo) Create(ctx context.Context, a *model.AuditoriaOrden) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *auditoriaRepo) ListByOrden(ctx context.Context, ordenID string) ([]model.AuditoriaOrden, error) {
	var registros []model.AuditoriaOrden
	err := r.db.WithContext(ctx).
		Where("orden_id = ?", ordenID).
		Order("created_at").
		Find(&registros).Error
	return registros, err
}
