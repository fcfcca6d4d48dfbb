package service

import (
	"context"
	"errors"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	BuscarPorCorreo(ctx context.Context, correo string) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if _, err := s.repo.FindByCorreo(ctx, req.Correo); err == nil {
		return nil, errors.New("Ya existe un cliente con ese correo")
	}
	cliente := &model.Cliente{Nombre: req.Nombre, Correo: req.Correo}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Obtener(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, repository.ErrClienteNoEncontrado
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) BuscarPorCorreo(ctx context.Context, correo string) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByCorreo(ctx, correo)
	if err != nil {
		return nil, repository.ErrClienteNoEncontrado
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = *clienteToResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, repository.ErrClienteNoEncontrado
	}
	if req.Nombre != nil {
		cliente.Nombre = *req.Nombre
	}
	if req.Correo != nil {
		cliente.Correo = *req.Correo
	}
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return repository.ErrClienteNoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	resp := &dto.ClienteResponse{
		ID:               c.ID,
		Nombre:           c.Nombre,
		Correo:           c.Correo,
		PuntosAcumulados: c.PuntosAcumulados,
	}
	if c.UltimaVisita != nil {
		v := c.UltimaVisita.Format("2006-01-02 15:04:05")
		resp.UltimaVisita = &v
	}
	return resp
}
