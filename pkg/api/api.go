// Package api 将业务路由组装到 gin 引擎上.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/router"
)

// RegisterGroup 注册 /api/v1 下的全部业务路由以及 Swagger 文档路由.
func RegisterGroup(e *gin.Engine, opts router.Options) *gin.Engine {
	router.RegisterAPIRoutes(e.Group("/api/v1"), opts)
	router.RegisterSwaggerRoute(e)

	return e
}
