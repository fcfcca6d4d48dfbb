package worker

// dlq.go
// Receipt jobs that fail (render or SMTP errors) land here so a shift
// manager can re-send them by hand. Single Redis list, newest first.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqRecibos = "dlq:recibos"

// DLQEntry preserves the failed job plus enough context to retry it.
type DLQEntry struct {
	JobType   string          `json:"job_type"`
	Payload   json.RawMessage `json:"payload"`
	Motivo    string          `json:"motivo"`
	FallidoEn time.Time       `json:"fallido_en"`
}

// SendToDLQ stores a failed receipt job. Never returns an error: losing a
// DLQ entry is preferable to crashing a worker goroutine.
func SendToDLQ(ctx context.Context, rdb *redis.Client, jobType string, payload json.RawMessage, motivo string) {
	entry := DLQEntry{
		JobType:   jobType,
		Payload:   payload,
		Motivo:    motivo,
		FallidoEn: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("job_type", jobType).Msg("dlq: no se pudo serializar la entrada")
		return
	}

	if err := rdb.LPush(ctx, dlqRecibos, data).Err(); err != nil {
		log.Error().Err(err).Str("job_type", jobType).Msg("dlq: no se pudo guardar la entrada")
		return
	}

	log.Warn().
		Str("job_type", jobType).
		Str("motivo", motivo).
		Msg("dlq: job movido a la cola de fallidos")
}

// DLQLength reports how many receipt jobs are waiting for manual retry.
func DLQLength(ctx context.Context, rdb *redis.Client) (int64, error) {
	return rdb.LLen(ctx, dlqRecibos).Result()
}
