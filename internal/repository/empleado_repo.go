package repository

import (
	"context"

	"gorm.io/gorm"

	"sallepos/internal/model"
)

type EmpleadoRepository interface {
	Create(ctx context.Context, e *model.Empleado) error
	FindByID(ctx context.Context, id uint) (*model.Empleado, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Empleado, error)
	List(ctx context.Context) ([]model.Empleado, error)
	Update(ctx context.Context, e *model.Empleado) error
	Delete(ctx context.Context, id uint) error
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) Create(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empleadoRepo) FindByID(ctx context.Context, id uint) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *empleadoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&e).Error
	return &e, err
}

func (r *empleadoRepo) List(ctx context.Context) ([]model.Empleado, error) {
	var empleados []model.Empleado
	err := r.db.WithContext(ctx).Order("nombre").Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) Update(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empleadoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Empleado{}, id).Error
}
