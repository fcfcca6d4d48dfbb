package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sallepos/internal/worker"
)

// Health reports Postgres and Redis connectivity plus the number of
// receipt jobs stuck in the dead letter queue. The terminal frontend
// polls this before allowing logins.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbOK := true
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbOK = false
		}

		redisOK := rdb.Ping(ctx).Err() == nil

		var recibosFallidos int64
		if redisOK {
			recibosFallidos, _ = worker.DLQLength(ctx, rdb)
		}

		status := http.StatusOK
		if !dbOK || !redisOK {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":               status == http.StatusOK,
			"db":               dbOK,
			"redis":            redisOK,
			"recibos_fallidos": recibosFallidos,
		})
	}
}
