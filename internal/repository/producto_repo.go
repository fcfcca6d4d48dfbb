package repository

import (
	"context"

	"gorm.io/gorm"

	"sallepos/internal/model"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	List(ctx context.Context, soloDisponibles bool) ([]model.Producto, error)
	ListByCategoria(ctx context.Context, categoriaID uint) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uint) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").First(&p, id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, soloDisponibles bool) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Preload("Categoria")
	if soloDisponibles {
		q = q.Where("status = ?", model.ProductoDisponible)
	}
	err := q.Order("nombre").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListByCategoria(ctx context.Context, categoriaID uint) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("categoria_id = ?", categoriaID).
		Order("nombre").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, id).Error
}
