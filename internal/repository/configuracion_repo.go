package repository

import (
	"context"

	"gorm.io/gorm"

	"sallepos/internal/model"
)

type ConfiguracionRepository interface {
	// Get returns the current ticket configuration, or nil when none was saved yet.
	Get(ctx context.Context) (*model.ConfiguracionTicket, error)
	Upsert(ctx context.Context, c *model.ConfiguracionTicket) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) Get(ctx context.Context) (*model.ConfiguracionTicket, error) {
	var c model.ConfiguracionTicket
	err := r.db.WithContext(ctx).Order("id DESC").First(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *configuracionRepo) Upsert(ctx context.Context, c *model.ConfiguracionTicket) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		c.ID = existing.ID
		return r.db.WithContext(ctx).Save(c).Error
	}
	return r.db.WithContext(ctx).Create(c).Error
}
