package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/dto"
	"sallepos/internal/middleware"
	"sallepos/internal/service"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// AbrirCaja godoc
// @Summary      Aperturar caja
// @Description  Registra el fondo inicial del cajón para el turno del cajero.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SetCajaRequest true "Monto inicial"
// @Success      200  {object} dto.CajaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/set-caja [post]
func (h *CajaHandler) AbrirCaja(c *gin.Context) {
	var req dto.SetCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sessionID := middleware.GetSessionID(c)
	if err := h.svc.AbrirCaja(c.Request.Context(), sessionID, *req.Monto); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.CajaResponse{Caja: *req.Monto})
}

// CajaActual godoc
// @Summary      Consultar caja
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.CajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/get-caja [get]
func (h *CajaHandler) CajaActual(c *gin.Context) {
	caja, err := h.svc.CajaActual(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrCajaNoAbierta) {
			status = http.StatusBadRequest
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.CajaResponse{Caja: caja})
}

// ResumenCaja godoc
// @Summary      Resumen del turno
// @Description  Monto inicial, balance actual y total vendido desde la apertura.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ResumenCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/resumen-caja [get]
func (h *CajaHandler) ResumenCaja(c *gin.Context) {
	empleado := middleware.GetEmpleado(c)
	resumen, err := h.svc.ResumenCaja(c.Request.Context(), middleware.GetSessionID(c), empleado.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrCajaNoAbierta) {
			status = http.StatusBadRequest
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// CerrarCaja godoc
// @Summary      Cerrar caja
// @Description  Persiste el corte del turno. El cajón sigue abierto; la sesión se limpia solo al cerrar sesión.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.CierreCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/cerrar-caja [post]
func (h *CajaHandler) CerrarCaja(c *gin.Context) {
	empleado := middleware.GetEmpleado(c)
	cierre, err := h.svc.CerrarCaja(c.Request.Context(), middleware.GetSessionID(c), empleado.ID, empleado.Nombre)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrCajaNoAbierta) {
			status = http.StatusBadRequest
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, cierre)
}

// Cierres godoc
// @Summary      Historial de cierres de caja
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Máximo de registros (default 50)"
// @Success      200 {array} dto.CierreCajaResponse
// @Router       /gerente/api/cierres-caja [get]
func (h *CajaHandler) Cierres(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	cierres, err := h.svc.Cierres(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cierres"))
		return
	}
	c.JSON(http.StatusOK, cierres)
}
