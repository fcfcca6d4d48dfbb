package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/dto"
	"sallepos/internal/middleware"
	"sallepos/internal/repository"
	"sallepos/internal/service"
)

type OrdenesHandler struct{ svc service.OrdenService }

func NewOrdenesHandler(svc service.OrdenService) *OrdenesHandler {
	return &OrdenesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear orden
// @Description  Registra una orden abierta en Redis con el total calculado en el servidor.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearOrdenRequest true "Items de la orden"
// @Success      201  {object} dto.OrdenResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/ordenes [post]
func (h *OrdenesHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.GetEmpleado(c), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, repository.ErrClienteNoEncontrado) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar órdenes abiertas del cajero
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.OrdenListResponse
// @Router       /api/ordenes [get]
func (h *OrdenesHandler) Listar(c *gin.Context) {
	empleado := middleware.GetEmpleado(c)
	ordenes, err := h.svc.Listar(c.Request.Context(), empleado.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar órdenes"))
		return
	}
	c.JSON(http.StatusOK, dto.OrdenListResponse{Ordenes: ordenes})
}

// ListarTodas godoc
// @Summary      Listar todas las órdenes abiertas
// @Description  Vista de cocina y gerencia: todas las órdenes vivas sin filtrar por cajero.
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.OrdenListResponse
// @Router       /api/ordenes-todas [get]
func (h *OrdenesHandler) ListarTodas(c *gin.Context) {
	ordenes, err := h.svc.ListarTodas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar órdenes"))
		return
	}
	c.JSON(http.StatusOK, dto.OrdenListResponse{Ordenes: ordenes})
}

// Obtener godoc
// @Summary      Obtener orden
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID de la orden"
// @Success      200 {object} dto.OrdenResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/ordenes/{id} [get]
func (h *OrdenesHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar godoc
// @Summary      Cancelar orden
// @Description  Elimina la orden abierta y deja registro de auditoría.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "ID de la orden"
// @Param        body body dto.CancelarOrdenRequest false "Motivo"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/ordenes/{id} [delete]
func (h *OrdenesHandler) Cancelar(c *gin.Context) {
	var req dto.CancelarOrdenRequest
	// Body is optional on cancel
	_ = c.ShouldBindJSON(&req)

	err := h.svc.Cancelar(c.Request.Context(), c.Param("id"), middleware.GetEmpleado(c), req.Motivo)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, repository.ErrOrdenNoEncontrada) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
