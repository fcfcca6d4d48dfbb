package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/service"
)

type RecibosHandler struct{ svc service.ReciboService }

func NewRecibosHandler(svc service.ReciboService) *RecibosHandler {
	return &RecibosHandler{svc: svc}
}

// Descargar godoc
// @Summary      Descargar recibo PDF
// @Description  Genera y descarga el recibo de una venta completada.
// @Tags         recibos
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path int true "ID de la venta"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /api/recibos/{id} [get]
func (h *RecibosHandler) Descargar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	path, err := h.svc.Generar(c.Request.Context(), uint(id))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrVentaNoEncontrada) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
