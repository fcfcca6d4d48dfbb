package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/dto"
	"sallepos/internal/service"
)

type DescuentosHandler struct{ svc service.DescuentoService }

func NewDescuentosHandler(svc service.DescuentoService) *DescuentosHandler {
	return &DescuentosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear descuento de cliente
// @Description  Desactiva cualquier descuento activo previo del mismo cliente.
// @Tags         descuentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearDescuentoRequest true "Detalle del descuento"
// @Success      201  {object} dto.DescuentoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /gerente/api/descuentos [post]
func (h *DescuentosHandler) Crear(c *gin.Context) {
	var req dto.CrearDescuentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar descuentos
// @Tags         descuentos
// @Produce      json
// @Security     BearerAuth
// @Param        activos query bool false "Solo descuentos activos"
// @Success      200 {array} dto.DescuentoResponse
// @Router       /gerente/api/descuentos [get]
func (h *DescuentosHandler) Listar(c *gin.Context) {
	soloActivos := c.Query("activos") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), soloActivos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar descuentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar descuento
// @Tags         descuentos
// @Security     BearerAuth
// @Param        id path int true "ID del descuento"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /gerente/api/descuentos/{id} [delete]
func (h *DescuentosHandler) Desactivar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrDescuentoNoEncontrado) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
