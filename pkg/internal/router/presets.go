package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/handle"
)

// RegisterPresetRoutes 注册过滤预设路由, 预设按命名空间隔离.
func RegisterPresetRoutes(g *gin.RouterGroup) {
	presetRoutes := g.Group("/presets")
	{
		presetRoutes.GET("/:namespace", handle.ListPresets)
		presetRoutes.POST("/:namespace", handle.SavePreset)
		presetRoutes.DELETE("/:namespace/:id", handle.DeletePreset)
	}
}
