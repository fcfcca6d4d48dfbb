package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/dto"
	"sallepos/internal/middleware"
	"sallepos/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Iniciar sesión con código de empleado
// @Description  Valida el código de 4 dígitos y abre una sesión efímera en Redis.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Código de empleado"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Elimina la sesión y todas las claves de caja asociadas.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Router       /api/cerrar-sesion [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cerrar sesión"))
		return
	}
	c.Status(http.StatusNoContent)
}
