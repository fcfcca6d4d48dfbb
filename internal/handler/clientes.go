package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/dto"
	"sallepos/internal/repository"
	"sallepos/internal/service"
)

type ClientesHandler struct {
	svc        service.ClienteService
	descuentos service.DescuentoService
}

func NewClientesHandler(svc service.ClienteService, descuentos service.DescuentoService) *ClientesHandler {
	return &ClientesHandler{svc: svc, descuentos: descuentos}
}

// Crear godoc
// @Summary      Registrar cliente de lealtad
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearClienteRequest true "Datos del cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/clientes [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
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
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteResponse
// @Router       /api/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	// Optional exact-match search by correo
	if correo := c.Query("correo"); correo != "" {
		resp, err := h.svc.BuscarPorCorreo(c.Request.Context(), correo)
		if err != nil {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusOK, []dto.ClienteResponse{*resp})
		return
	}

	clientes, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// Obtener godoc
// @Summary      Obtener cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID del cliente"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/clientes/{id} [get]
func (h *ClientesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DescuentoActivo godoc
// @Summary      Descuento activo del cliente
// @Description  Devuelve el descuento que la terminal puede ofrecer al cobrar, o null.
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID del cliente"
// @Success      200 {object} dto.DescuentoResponse
// @Router       /api/clientes/{id}/descuento [get]
func (h *ClientesHandler) DescuentoActivo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.descuentos.ActivoParaCliente(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar descuento"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID del cliente"
// @Param        body body dto.ActualizarClienteRequest true "Campos a actualizar"
// @Success      200  {object} dto.ClienteResponse
// @Failure      404  {object} apierror.APIError
// @Router       /admin/api/clientes/{id} [put]
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, repository.ErrClienteNoEncontrado) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Security     BearerAuth
// @Param        id path int true "ID del cliente"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /admin/api/clientes/{id} [delete]
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the numeric :id path param, writing the 400 on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(id), true
}
