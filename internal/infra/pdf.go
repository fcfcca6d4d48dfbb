package infra

// pdf.go — PDF generation using go-pdf/fpdf.
// Two documents are produced here:
//   - 80mm thermal-style receipt for a paid order (mailed to loyalty clients
//     and downloadable from the terminal)
//   - A4 sales-by-employee report for a date range

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"sallepos/internal/model"
)

// GenerateReciboPDF renders the receipt for a completed Venta using the
// business data from ConfiguracionTicket. storagePath is created if needed.
// Returns the absolute path to the generated file, named
// recibo_{venta}_{yyyymmdd_hhmmss}.pdf.
func GenerateReciboPDF(venta *model.Venta, cfg *model.ConfiguracionTicket, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%d_%s.pdf", venta.ID, venta.FechaVenta.Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	// 80mm thermal receipt paper, height grows with the item count
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 80, Ht: 160},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.SetAutoPageBreak(true, 5)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 10

	// ── Header ───────────────────────────────────────────────────────────────
	nombre := "SallePOS"
	if cfg != nil && cfg.NombreNegocio != "" {
		nombre = cfg.NombreNegocio
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, nombre, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	if cfg != nil {
		if cfg.Encabezado != nil && *cfg.Encabezado != "" {
			pdf.CellFormat(contentW, 4, *cfg.Encabezado, "", 1, "C", false, 0, "")
		}
		if cfg.Direccion != nil && *cfg.Direccion != "" {
			pdf.CellFormat(contentW, 4, *cfg.Direccion, "", 1, "C", false, 0, "")
		}
		if cfg.Telefono != nil && *cfg.Telefono != "" {
			pdf.CellFormat(contentW, 4, "Tel: "+*cfg.Telefono, "", 1, "C", false, 0, "")
		}
		if cfg.RFC != nil && *cfg.RFC != "" {
			pdf.CellFormat(contentW, 4, "RFC: "+*cfg.RFC, "", 1, "C", false, 0, "")
		}
	}
	pdf.Ln(2)

	// ── Receipt info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Recibo N° %d", venta.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.FechaVenta.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Atendió: "+venta.CajeroNombre, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(5, pdf.GetY(), pageW-5, pdf.GetY())
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venta.Items {
		nombre := item.Nombre
		if len(nombre) > 24 {
			nombre = nombre[:23] + "…"
		}
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+item.Subtotal().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(5, pdf.GetY(), pageW-5, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	if venta.PagoCon.IsPositive() {
		pdf.CellFormat(col1+col2, 4, "Pago con:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "$"+venta.PagoCon.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.CellFormat(col1+col2, 4, "Cambio:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "$"+venta.Cambio.StringFixed(2), "", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(contentW, 4, "Pagado con puntos de lealtad", "", 1, "L", false, 0, "")
	}

	if venta.Notas != nil && *venta.Notas != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.MultiCell(contentW, 3.5, *venta.Notas, "", "L", false)
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	mensaje := "¡Gracias por su compra!"
	if cfg != nil && cfg.MensajeAgradecimiento != nil && *cfg.MensajeAgradecimiento != "" {
		mensaje = *cfg.MensajeAgradecimiento
	}
	pdf.CellFormat(contentW, 4, mensaje, "", 1, "C", false, 0, "")
	if cfg != nil && cfg.PiePagina != nil && *cfg.PiePagina != "" {
		pdf.SetFont("Helvetica", "", 6)
		pdf.CellFormat(contentW, 4, *cfg.PiePagina, "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// ReporteEmpleadoRow is one employee line of the sales report.
type ReporteEmpleadoRow struct {
	CajeroNombre   string
	CantidadVentas int
	TotalVendido   decimal.Decimal
}

// GenerateReporteEmpleadosPDF renders an A4 sales-by-employee report for the
// given date range and returns the path of the written file.
func GenerateReporteEmpleadosPDF(rows []ReporteEmpleadoRow, fechaInicio, fechaFin, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_empleados_%s_%s.pdf", fechaInicio, fechaFin)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Reporte de Ventas por Empleado", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Del %s al %s", fechaInicio, fechaFin), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	col1 := contentW * 0.50
	col2 := contentW * 0.20
	col3 := contentW * 0.30

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(col1, 8, "Empleado", "1", 0, "L", true, 0, "")
	pdf.CellFormat(col2, 8, "Ventas", "1", 0, "C", true, 0, "")
	pdf.CellFormat(col3, 8, "Total Vendido", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	granTotal := decimal.Zero
	totalVentas := 0
	for _, row := range rows {
		pdf.CellFormat(col1, 7, row.CajeroNombre, "1", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 7, fmt.Sprintf("%d", row.CantidadVentas), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 7, "$"+row.TotalVendido.StringFixed(2), "1", 1, "R", false, 0, "")
		granTotal = granTotal.Add(row.TotalVendido)
		totalVentas += row.CantidadVentas
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 8, "TOTAL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, fmt.Sprintf("%d", totalVentas), "1", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 8, "$"+granTotal.StringFixed(2), "1", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
