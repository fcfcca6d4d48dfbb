package service

import (
	"context"
	"errors"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
)

var ErrEmpleadoNoEncontrado = errors.New("Empleado no encontrado")

type EmpleadoService interface {
	Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Listar(ctx context.Context) ([]dto.EmpleadoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type empleadoService struct {
	repo repository.EmpleadoRepository
}

func NewEmpleadoService(repo repository.EmpleadoRepository) EmpleadoService {
	return &empleadoService{repo: repo}
}

func (s *empleadoService) Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	// Codes are the whole credential, so they must be unique across the roster
	if _, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil {
		return nil, errors.New("El código ya está en uso")
	}
	e := &model.Empleado{Nombre: req.Nombre, Rol: req.Rol, Codigo: req.Codigo}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return empleadoToResponse(e), nil
}

func (s *empleadoService) Listar(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	empleados, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmpleadoResponse, len(empleados))
	for i := range empleados {
		resp[i] = *empleadoToResponse(&empleados[i])
	}
	return resp, nil
}

func (s *empleadoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEmpleadoNoEncontrado
	}
	if req.Codigo != nil && *req.Codigo != e.Codigo {
		if _, err := s.repo.FindByCodigo(ctx, *req.Codigo); err == nil {
			return nil, errors.New("El código ya está en uso")
		}
		e.Codigo = *req.Codigo
	}
	if req.Nombre != nil {
		e.Nombre = *req.Nombre
	}
	if req.Rol != nil {
		e.Rol = *req.Rol
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return empleadoToResponse(e), nil
}

func (s *empleadoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrEmpleadoNoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

func empleadoToResponse(e *model.Empleado) *dto.EmpleadoResponse {
	// The code never leaves the server
	return &dto.EmpleadoResponse{ID: e.ID, Nombre: e.Nombre, Rol: e.Rol}
}
