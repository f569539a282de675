package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/internal/types"
	"github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/metrics"
	"github.com/yeisme/stagevault/pkg/rule"
)

// UploadDocuments 批量申请预签名 PUT 上传 URL.
//
//	@Summary		申请文档上传 URL
//	@Description	为每个文件生成预签名 PUT URL, 客户端直传对象存储
//	@Tags			文档
//	@Accept			json
//	@Produce		json
//	@Param			files	body		types.UploadDocumentsRequest	true	"待上传文件"
//	@Success		200		{object}	types.UploadDocumentsResponse	"预签名结果"
//	@Router			/api/v1/documents/upload [post]
func UploadDocuments(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.UploadDocumentsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewDocumentService(c.Request.Context())

	resp, err := svc.PresignedPutURLs(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("presign upload urls failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	metrics.PresignCounter.WithLabelValues("put").Add(float64(len(resp.Results)))

	c.JSON(http.StatusOK, resp)
}

// GetDocument 查询文档元数据.
//
//	@Summary	查询文档元数据
//	@Tags		文档
//	@Produce	json
//	@Param		id	path		int						true	"文档 ID"
//	@Success	200	{object}	types.DocumentResponse	"文档元数据"
//	@Router		/api/v1/documents/{id} [get]
func GetDocument(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewDocumentService(c.Request.Context())

	resp, err := svc.Get(c.Request.Context(), user, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SearchDocuments 搜索文档.
//
//	@Summary		搜索文档
//	@Description	按过滤条件/关键字/排序搜索文档元数据
//	@Tags			文档
//	@Accept			json
//	@Produce		json
//	@Param			query	body		types.SearchDocumentsRequest	true	"搜索条件"
//	@Success		200		{object}	types.SearchDocumentsResponse	"搜索结果"
//	@Router			/api/v1/documents/search [post]
func SearchDocuments(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.SearchDocumentsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewDocumentService(c.Request.Context())

	resp, err := svc.Search(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("search documents failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteDocument 将文档移入回收站 (软删除).
//
//	@Summary	删除文档
//	@Tags		文档
//	@Produce	json
//	@Param		id	path		int					true	"文档 ID"
//	@Success	200	{object}	map[string]string	"删除结果"
//	@Router		/api/v1/documents/{id} [delete]
func DeleteDocument(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewDocumentService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), user, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "trashed"})
}

// GetDocumentURL 生成文档下载用预签名 GET URL.
//
//	@Summary	获取文档下载 URL
//	@Tags		文档
//	@Produce	json
//	@Param		id	path		int							true	"文档 ID"
//	@Success	200	{object}	types.DocumentURLResponse	"预签名 URL"
//	@Router		/api/v1/documents/{id}/url [get]
func GetDocumentURL(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewDocumentService(c.Request.Context())

	resp, err := svc.PresignedGetURL(c.Request.Context(), user, id)
	if err != nil {
		log.Logger().Error().Err(err).Msg("presign get url failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

		return
	}

	metrics.PresignCounter.WithLabelValues("get").Inc()

	c.JSON(http.StatusOK, resp)
}
