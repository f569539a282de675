package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/handle"
	"github.com/yeisme/stagevault/pkg/middleware"
)

// RegisterDocumentRoutes 注册文档相关路由.
// 上传/删除要求 manager, 预览与下载对所有角色开放.
func RegisterDocumentRoutes(g *gin.RouterGroup, opts Options) {
	documentRoutes := g.Group("/documents")
	{
		writeMin := middleware.RequireMinRole(middleware.RoleManager)

		// 上传文件（生成预签名 URL），支持批量上传
		documentRoutes.POST("/upload", writeMin, handle.UploadDocuments)
		documentRoutes.POST("/search", handle.SearchDocuments)

		singleGroup := documentRoutes.Group("/:id")
		{
			singleGroup.GET("", cached(opts.ResponseCache, handle.GetDocument)...)
			singleGroup.DELETE("", writeMin, handle.DeleteDocument)
			// 获取文件访问 URL (生成预签名 URL)
			singleGroup.GET("/url", handle.GetDocumentURL)
			// 按 content-type 分发查看器
			singleGroup.GET("/preview", handle.PreviewDocument)
		}
	}
}
