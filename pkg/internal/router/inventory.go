package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/handle"
	"github.com/yeisme/stagevault/pkg/middleware"
)

// RegisterInventoryRoutes 注册库存相关路由.
// 读操作对所有角色开放, 写操作要求 technician 及以上.
func RegisterInventoryRoutes(g *gin.RouterGroup, opts Options) {
	inventoryRoutes := g.Group("/inventory")
	{
		writeMin := middleware.RequireMinRole(middleware.RoleTechnician)

		inventoryRoutes.POST("", writeMin, handle.CreateInventoryItem)
		inventoryRoutes.GET("/:id", cached(opts.ResponseCache, handle.GetInventoryItem)...)
		inventoryRoutes.PUT("/:id", writeMin, handle.UpdateInventoryItem)
		inventoryRoutes.DELETE("/:id", writeMin, handle.DeleteInventoryItem)

		// 搜索走 POST 以携带结构化过滤条件
		inventoryRoutes.POST("/search", handle.SearchInventory)
	}
}
