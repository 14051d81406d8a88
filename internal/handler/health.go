package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/panteragalgo/awa-app/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports DB and Redis connectivity plus the backlog of each job
// queue. Jobs are never retried, so a growing "muertos" count is the first
// sign that receipts or emails are failing.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	colas := map[string]string{
		"email":        worker.QueueEmail,
		"recibo":       worker.QueueRecibo,
		"notificacion": worker.QueueNotificacion,
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		estadoColas := gin.H{}
		if redisStatus == "connected" {
			for nombre, queue := range colas {
				pendientes, _ := rdb.LLen(ctx, queue).Result()
				muertos, _ := worker.DLQLength(ctx, rdb, queue)
				estadoColas[nombre] = gin.H{
					"pendientes": pendientes,
					"muertos":    muertos,
				}
			}
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"service": "awa-backend",
			"db":      dbStatus,
			"redis":   redisStatus,
			"colas":   estadoColas,
		})
	}
}
