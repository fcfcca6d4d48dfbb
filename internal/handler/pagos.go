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

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler { return &PagosHandler{svc: svc} }

// ProcesarPago godoc
// @Summary      Procesar pago en efectivo
// @Description  Liquida una orden abierta: valida descuento, efectivo y liquidez del cajón; persiste la venta y acumula puntos en una sola transacción.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PagoRequest true "Detalle del pago"
// @Success      200  {object} dto.PagoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/procesar-pago [post]
func (h *PagosHandler) ProcesarPago(c *gin.Context) {
	var req dto.PagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ProcesarPago(c.Request.Context(), middleware.GetSessionID(c), middleware.GetEmpleado(c), req)
	if err != nil {
		c.JSON(pagoErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProcesarPagoPuntos godoc
// @Summary      Procesar pago con puntos de lealtad
// @Description  Liquida una orden descontando puntos del cliente. El cajón de efectivo no se toca.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PagoPuntosRequest true "Detalle del canje"
// @Success      200  {object} dto.PagoPuntosResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/procesar-pago-puntos [post]
func (h *PagosHandler) ProcesarPagoPuntos(c *gin.Context) {
	var req dto.PagoPuntosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ProcesarPagoPuntos(c.Request.Context(), middleware.GetEmpleado(c), req)
	if err != nil {
		c.JSON(pagoErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func pagoErrorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrOrdenNoEncontrada),
		errors.Is(err, repository.ErrClienteNoEncontrado):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
