package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	empleados repository.EmpleadoRepository
	sesiones  repository.SesionRepository
}

func NewAuthService(empleados repository.EmpleadoRepository, sesiones repository.SesionRepository) AuthService {
	return &authService{empleados: empleados, sesiones: sesiones}
}

// Login matches the 4-digit code against the worker roster and opens a new
// Redis-backed session identified by an opaque uuid.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	empleado, err := s.empleados.FindByCodigo(ctx, req.Codigo)
	if err != nil {
		return nil, errors.New("Código incorrecto")
	}

	sessionID := uuid.NewString()
	if err := s.sesiones.SaveSesion(ctx, sessionID, empleado); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		SessionID: sessionID,
		Empleado:  empleado,
		// Only cashiers fund a drawer before charging; managers, admins
		// and kitchen staff go straight to their screens.
		RequiereCaja: empleado.Rol == model.RolCajero,
	}, nil
}

// Logout removes the session and every drawer key tied to it.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sesiones.LimpiarSesion(ctx, sessionID)
}
