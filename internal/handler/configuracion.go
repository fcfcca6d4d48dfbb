package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/dto"
	"sallepos/internal/middleware"
	"sallepos/internal/service"
)

type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

// Obtener godoc
// @Summary      Configuración del ticket
// @Tags         configuracion
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} model.ConfiguracionTicket
// @Router       /api/configuracion-ticket [get]
func (h *ConfiguracionHandler) Obtener(c *gin.Context) {
	cfg, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer configuración"))
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Guardar godoc
// @Summary      Guardar configuración del ticket
// @Tags         configuracion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ConfiguracionTicketRequest true "Configuración"
// @Success      200  {object} model.ConfiguracionTicket
// @Failure      400  {object} apierror.APIError
// @Router       /admin/api/configuracion-ticket [put]
func (h *ConfiguracionHandler) Guardar(c *gin.Context) {
	var req dto.ConfiguracionTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	empleado := middleware.GetEmpleado(c)
	cfg, err := h.svc.Guardar(c.Request.Context(), empleado.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, cfg)
}
