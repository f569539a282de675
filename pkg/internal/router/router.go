// Package router 管理路由配置，用于设置HTTP服务的路由规则.
package router

import (
	"github.com/gin-gonic/gin"
)

// Options 路由注册选项.
// ResponseCache 为只读端点的响应缓存中间件, 为 nil 时读路由不挂缓存.
type Options struct {
	ResponseCache gin.HandlerFunc
}

// RegisterAPIRoutes 将全部业务路由注册到 /api/v1 路由组.
func RegisterAPIRoutes(g *gin.RouterGroup, opts Options) {
	RegisterInventoryRoutes(g, opts)
	RegisterPerformanceRoutes(g, opts)
	RegisterScheduleRoutes(g, opts)
	RegisterDocumentRoutes(g, opts)
	RegisterPresetRoutes(g)
	RegisterTrashRoutes(g)
	RegisterStatsRoutes(g, opts)
	RegisterHealthCheckRoute(g)
	RegisterSchedulerRoutes(g)
}

// cached 在中间件存在时将其拼到处理链前面.
func cached(mw gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if mw == nil {
		return []gin.HandlerFunc{h}
	}

	return []gin.HandlerFunc{mw, h}
}
