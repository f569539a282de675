package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/handle"
	"github.com/yeisme/stagevault/pkg/middleware"
)

// RegisterSchedulerRoutes 注册调度器相关路由, 仅 admin 可操作.
func RegisterSchedulerRoutes(g *gin.RouterGroup) {
	schedulerRoutes := g.Group("/scheduler", middleware.RequireMinRole(middleware.RoleAdmin))
	{
		schedulerRoutes.GET("/jobs", handle.SchedulerJobs)
		schedulerRoutes.GET("/jobs/:name", handle.SchedulerJobInfo)
		schedulerRoutes.DELETE("/jobs/:name", handle.SchedulerRemoveJob)
	}
}
