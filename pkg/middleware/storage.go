package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/context"
	"github.com/yeisme/stagevault/pkg/internal/storage"
)

// StorageMiddleware 将存储 Manager 注入到请求 context 中.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
