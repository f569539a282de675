package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/handle"
	"github.com/yeisme/stagevault/pkg/middleware"
)

// RegisterTrashRoutes 注册文档回收站路由, 全部要求 manager 及以上.
func RegisterTrashRoutes(g *gin.RouterGroup) {
	trashRoutes := g.Group("/trash", middleware.RequireMinRole(middleware.RoleManager))
	{
		trashRoutes.GET("", handle.ListTrash)
		trashRoutes.POST("/restore", handle.RestoreTrash)
		trashRoutes.POST("/purge", handle.PurgeTrash)
	}
}
