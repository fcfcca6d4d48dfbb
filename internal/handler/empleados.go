package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/dto"
	"sallepos/internal/service"
)

type EmpleadosHandler struct{ svc service.EmpleadoService }

func NewEmpleadosHandler(svc service.EmpleadoService) *EmpleadosHandler {
	return &EmpleadosHandler{svc: svc}
}

// Crear godoc
// @Summary      Alta de empleado
// @Description  Registra un empleado con su código único de 4 dígitos.
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearEmpleadoRequest true "Datos del empleado"
// @Success      201  {object} dto.EmpleadoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /admin/api/empleados [post]
func (h *EmpleadosHandler) Crear(c *gin.Context) {
	var req dto.CrearEmpleadoRequest
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
// @Summary      Listar empleados
// @Tags         empleados
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.EmpleadoResponse
// @Router       /admin/api/empleados [get]
func (h *EmpleadosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar empleados"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID del empleado"
// @Param        body body dto.ActualizarEmpleadoRequest true "Campos a actualizar"
// @Success      200  {object} dto.EmpleadoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /admin/api/empleados/{id} [put]
func (h *EmpleadosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarEmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrEmpleadoNoEncontrado) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Baja de empleado
// @Tags         empleados
// @Security     BearerAuth
// @Param        id path int true "ID del empleado"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /admin/api/empleados/{id} [delete]
func (h *EmpleadosHandler) Eliminar(c *gin.Context) {
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
