package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sallepos/internal/model"
)

// ResumenTurno aggregates the sales of one cashier since the shift opened.
type ResumenTurno struct {
	CantidadOrdenes int
	TotalVentas     decimal.Decimal
}

// ResumenFinanciero aggregates revenue and item costs over a date range. The
// cost side comes from the JSONB item snapshots, so historic sales keep the
// cost the product had at sale time.
type ResumenFinanciero struct {
	TotalVentas    decimal.Decimal
	TotalCostos    decimal.Decimal
	CantidadVentas int
}

// VentasEmpleado is one row of the sales-by-employee report.
type VentasEmpleado struct {
	CajeroID       uint
	CajeroNombre   string
	CantidadVentas int
	TotalVendido   decimal.Decimal
}

type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uint) (*model.Venta, error)
	ResumenTurno(ctx context.Context, cajeroID uint, desde time.Time) (*ResumenTurno, error)
	// VentasTurno lists one cashier's sales since the shift opened, newest first.
	VentasTurno(ctx context.Context, cajeroID uint, desde time.Time) ([]model.Venta, error)
	Recientes(ctx context.Context, limit int) ([]model.Venta, error)
	ResumenFinanciero(ctx context.Context, desde, hasta time.Time) (*ResumenFinanciero, error)
	VentasPorEmpleado(ctx context.Context, desde, hasta time.Time) ([]VentasEmpleado, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) ResumenTurno(ctx context.Context, cajeroID uint, desde time.Time) (*ResumenTurno, error) {
	var row struct {
		Cantidad int
		Total    decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("COUNT(*) AS cantidad, COALESCE(SUM(total), 0) AS total").
		Where("cajero_id = ? AND fecha_venta >= ?", cajeroID, desde).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &ResumenTurno{CantidadOrdenes: row.Cantidad, TotalVentas: row.Total}, nil
}

func (r *ventaRepo) VentasTurno(ctx context.Context, cajeroID uint, desde time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("cajero_id = ? AND fecha_venta >= ?", cajeroID, desde).
		Order("fecha_venta DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) Recientes(ctx context.Context, limit int) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Order("fecha_venta DESC").
		Limit(limit).
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ResumenFinanciero(ctx context.Context, desde, hasta time.Time) (*ResumenFinanciero, error) {
	var row struct {
		TotalVentas decimal.Decimal
		Cantidad    int
	}
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("COALESCE(SUM(total), 0) AS total_ventas, COUNT(*) AS cantidad").
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	// Cost side expands the JSONB item snapshots
	var totalCostos decimal.Decimal
	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM((item->>'costo')::numeric * (item->>'cantidad')::int), 0)
		FROM ventas, jsonb_array_elements(items) AS item
		WHERE fecha_venta >= ? AND fecha_venta < ?`, desde, hasta).
		Scan(&totalCostos).Error
	if err != nil {
		return nil, err
	}

	return &ResumenFinanciero{
		TotalVentas:    row.TotalVentas,
		TotalCostos:    totalCostos,
		CantidadVentas: row.Cantidad,
	}, nil
}

func (r *ventaRepo) VentasPorEmpleado(ctx context.Context, desde, hasta time.Time) ([]VentasEmpleado, error) {
	var rows []VentasEmpleado
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("cajero_id, cajero_nombre, COUNT(*) AS cantidad_ventas, COALESCE(SUM(total), 0) AS total_vendido").
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Group("cajero_id, cajero_nombre").
		Order("total_vendido DESC").
		Scan(&rows).Error
	return rows, err
}
