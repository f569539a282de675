package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/handle"
	"github.com/yeisme/stagevault/pkg/middleware"
)

// RegisterPerformanceRoutes 注册剧目与技术护照路由.
// 剧目写操作要求 technician, 技术护照写操作要求 manager.
func RegisterPerformanceRoutes(g *gin.RouterGroup, opts Options) {
	performanceRoutes := g.Group("/performances")
	{
		writeMin := middleware.RequireMinRole(middleware.RoleTechnician)

		performanceRoutes.POST("", writeMin, handle.CreatePerformance)
		performanceRoutes.GET("/:id", cached(opts.ResponseCache, handle.GetPerformance)...)
		performanceRoutes.PUT("/:id", writeMin, handle.UpdatePerformance)
		performanceRoutes.DELETE("/:id", writeMin, handle.DeletePerformance)
		performanceRoutes.POST("/search", handle.ListPerformances)
		performanceRoutes.GET("/:id/documents", handle.ListPerformanceDocuments)

		// 技术护照随剧目走, 分区整体覆盖
		passportGroup := performanceRoutes.Group("/:id/passport")
		{
			passportGroup.GET("", cached(opts.ResponseCache, handle.GetPassport)...)
			passportGroup.PUT("", middleware.RequireMinRole(middleware.RoleManager), handle.UpdatePassport)
		}
	}
}
