package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/handle"
	"github.com/yeisme/stagevault/pkg/middleware"
)

// RegisterScheduleRoutes 注册排期相关路由.
func RegisterScheduleRoutes(g *gin.RouterGroup, opts Options) {
	scheduleRoutes := g.Group("/schedule")
	{
		writeMin := middleware.RequireMinRole(middleware.RoleTechnician)

		scheduleRoutes.GET("", cached(opts.ResponseCache, handle.ListSchedule)...)
		scheduleRoutes.POST("", writeMin, handle.CreateScheduleEvent)
		scheduleRoutes.GET("/:id", handle.GetScheduleEvent)
		scheduleRoutes.PUT("/:id", writeMin, handle.UpdateScheduleEvent)
		scheduleRoutes.DELETE("/:id", writeMin, handle.DeleteScheduleEvent)
	}
}
