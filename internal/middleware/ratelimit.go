package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimit limita requisições por IP numa janela fixa, com contador no
// Redis (INCR + EXPIRE). Se o Redis estiver fora, a requisição passa: o
// limitador protege contra abuso, não é pré-condição do agendamento.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf(
			"ratelimit:%s:%d",
			c.ClientIP(),
			time.Now().Unix()/int64(window.Seconds()),
		)

		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Println("ratelimit redis error:", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too_many_requests",
			})
			return
		}

		c.Next()
	}
}
