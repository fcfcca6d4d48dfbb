package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
)

type OrdenService interface {
	Crear(ctx context.Context, cajero *model.Empleado, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error)
	Obtener(ctx context.Context, ordenID string) (*dto.OrdenResponse, error)
	// Listar returns the open orders created by one cashier.
	Listar(ctx context.Context, cajeroID uint) ([]dto.OrdenResponse, error)
	// ListarTodas returns every open order (kitchen display, managers).
	ListarTodas(ctx context.Context) ([]dto.OrdenResponse, error)
	Cancelar(ctx context.Context, ordenID string, cajero *model.Empleado, motivo *string) error
}

type ordenService struct {
	ordenes   repository.OrdenRepository
	clientes  repository.ClienteRepository
	auditoria repository.AuditoriaRepository
}

func NewOrdenService(
	ordenes repository.OrdenRepository,
	clientes repository.ClienteRepository,
	auditoria repository.AuditoriaRepository,
) OrdenService {
	return &ordenService{ordenes: ordenes, clientes: clientes, auditoria: auditoria}
}

func (s *ordenService) Crear(ctx context.Context, cajero *model.Empleado, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	items := make([]model.ItemOrden, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		item := model.ItemOrden{
			Nombre:       it.Nombre,
			Precio:       it.Precio.Round(2),
			Costo:        it.Costo.Round(2),
			PrecioPuntos: it.PrecioPuntos,
			Cantidad:     it.Cantidad,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	orden := &model.Orden{
		OrdenID:  uuid.NewString(),
		Items:    items,
		Total:    total.Round(2),
		Estado:   model.OrdenPendiente,
		Cajero:   cajero.Nombre,
		CajeroID: cajero.ID,
		Fecha:    time.Now().Format("2006-01-02 15:04:05"),
		Notas:    req.Notas,
	}

	if req.ClienteID != nil {
		cliente, err := s.clientes.FindByID(ctx, *req.ClienteID)
		if err != nil {
			return nil, repository.ErrClienteNoEncontrado
		}
		orden.ClienteID = &cliente.ID
		orden.ClienteNombre = &cliente.Nombre
	}

	if err := s.ordenes.Save(ctx, orden); err != nil {
		return nil, err
	}
	return ordenToResponse(orden), nil
}

func (s *ordenService) Obtener(ctx context.Context, ordenID string) (*dto.OrdenResponse, error) {
	orden, err := s.ordenes.Get(ctx, ordenID)
	if err != nil {
		return nil, err
	}
	return ordenToResponse(orden), nil
}

func (s *ordenService) Listar(ctx context.Context, cajeroID uint) ([]dto.OrdenResponse, error) {
	todas, err := s.ordenes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrdenResponse, 0, len(todas))
	for i := range todas {
		if todas[i].CajeroID == cajeroID {
			resp = append(resp, *ordenToResponse(&todas[i]))
		}
	}
	return resp, nil
}

func (s *ordenService) ListarTodas(ctx context.Context) ([]dto.OrdenResponse, error) {
	todas, err := s.ordenes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrdenResponse, len(todas))
	for i := range todas {
		resp[i] = *ordenToResponse(&todas[i])
	}
	return resp, nil
}

// Cancelar removes the open order and leaves a durable audit record of the
// terminal transition.
func (s *ordenService) Cancelar(ctx context.Context, ordenID string, cajero *model.Empleado, motivo *string) error {
	orden, err := s.ordenes.Get(ctx, ordenID)
	if err != nil {
		return err
	}

	if err := s.ordenes.Delete(ctx, ordenID); err != nil {
		return err
	}

	return s.auditoria.Create(ctx, &model.AuditoriaOrden{
		OrdenID:      orden.OrdenID,
		CajeroID:     cajero.ID,
		CajeroNombre: cajero.Nombre,
		Total:        orden.Total,
		EstadoFinal:  model.OrdenCancelada,
		Motivo:       motivo,
	})
}

func ordenToResponse(o *model.Orden) *dto.OrdenResponse {
	return &dto.OrdenResponse{
		OrdenID:       o.OrdenID,
		Items:         o.Items,
		Total:         o.Total,
		Estado:        o.Estado,
		Cajero:        o.Cajero,
		CajeroID:      o.CajeroID,
		Fecha:         o.Fecha,
		Notas:         o.Notas,
		ClienteID:     o.ClienteID,
		ClienteNombre: o.ClienteNombre,
	}
}
