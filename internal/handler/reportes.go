package handler

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/dto"
	"sallepos/internal/service"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// ReporteFinanciero godoc
// @Summary      Reporte financiero
// @Description  Ventas, costos (desde los snapshots JSONB) y ganancia del rango de fechas.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_inicio query string true "YYYY-MM-DD"
// @Param        fecha_fin    query string true "YYYY-MM-DD"
// @Success      200 {object} dto.ReporteFinancieroResponse
// @Failure      400 {object} apierror.APIError
// @Router       /gerente/api/reportes-financieros [get]
func (h *ReportesHandler) ReporteFinanciero(c *gin.Context) {
	var filter dto.RangoFechasFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ReporteFinanciero(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasPorEmpleado godoc
// @Summary      Ventas por empleado
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_inicio query string true "YYYY-MM-DD"
// @Param        fecha_fin    query string true "YYYY-MM-DD"
// @Success      200 {array} dto.VentasEmpleadoItem
// @Failure      400 {object} apierror.APIError
// @Router       /gerente/api/ventas-empleado [get]
func (h *ReportesHandler) VentasPorEmpleado(c *gin.Context) {
	var filter dto.RangoFechasFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.VentasPorEmpleado(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasPorEmpleadoPDF godoc
// @Summary      Reporte de ventas por empleado en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        fecha_inicio query string true "YYYY-MM-DD"
// @Param        fecha_fin    query string true "YYYY-MM-DD"
// @Success      200 {file} file
// @Failure      400 {object} apierror.APIError
// @Router       /gerente/api/ventas-empleado/pdf [get]
func (h *ReportesHandler) VentasPorEmpleadoPDF(c *gin.Context) {
	var filter dto.RangoFechasFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	path, err := h.svc.ReporteEmpleadosPDF(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}

// VentasRecientes godoc
// @Summary      Ventas recientes
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Máximo de registros (default 20)"
// @Success      200 {array} dto.VentaRecienteItem
// @Router       /gerente/api/ventas-recientes [get]
func (h *ReportesHandler) VentasRecientes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	resp, err := h.svc.VentasRecientes(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas recientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
