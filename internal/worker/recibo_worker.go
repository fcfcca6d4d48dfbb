package worker

// recibo_worker.go
// Renders the PDF receipt for a completed sale and mails it to the client.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"sallepos/internal/infra"
	"sallepos/internal/repository"
)

// ReciboJob is the job envelope sent to QueueRecibos.
type ReciboJob struct {
	VentaID uint   `json:"venta_id"`
	Correo  string `json:"correo"`
}

type ReciboWorker struct {
	ventas        repository.VentaRepository
	configuracion repository.ConfiguracionRepository
	mailer        *infra.Mailer
	storagePath   string
}

func NewReciboWorker(
	ventas repository.VentaRepository,
	configuracion repository.ConfiguracionRepository,
	mailer *infra.Mailer,
	storagePath string,
) *ReciboWorker {
	return &ReciboWorker{
		ventas:        ventas,
		configuracion: configuracion,
		mailer:        mailer,
		storagePath:   storagePath,
	}
}

// Process renders and mails the receipt. A returned error sends the job to
// the dead letter queue.
func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var job ReciboJob
	if err := json.Unmarshal(raw, &job); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return err
	}
	if job.Correo == "" {
		log.Warn().Uint("venta_id", job.VentaID).Msg("recibo_worker: empty correo, skipping")
		return nil
	}

	venta, err := w.ventas.FindByID(ctx, job.VentaID)
	if err != nil {
		return fmt.Errorf("recibo_worker: venta %d: %w", job.VentaID, err)
	}
	cfg, err := w.configuracion.Get(ctx)
	if err != nil {
		return fmt.Errorf("recibo_worker: configuracion: %w", err)
	}

	pdfPath, err := infra.GenerateReciboPDF(venta, cfg, w.storagePath)
	if err != nil {
		return err
	}

	nombre := "SallePOS"
	if cfg != nil && cfg.NombreNegocio != "" {
		nombre = cfg.NombreNegocio
	}
	subject := fmt.Sprintf("Su recibo de compra - %s", nombre)
	body := fmt.Sprintf("Gracias por su compra. Adjuntamos el recibo N° %d.", venta.ID)
	if err := w.mailer.SendRecibo(job.Correo, subject, body, pdfPath); err != nil {
		return fmt.Errorf("recibo_worker: enviar a %s: %w", job.Correo, err)
	}

	log.Info().Uint("venta_id", venta.ID).Str("to", job.Correo).Msg("recibo_worker: recibo enviado")
	return nil
}
