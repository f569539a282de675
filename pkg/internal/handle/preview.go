package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/metrics"
)

// PreviewDocument 构建文档预览响应.
//
//	@Summary		预览文档
//	@Description	按 content-type 分发查看器, 表格类文档附带有界行窗口
//	@Tags			文档
//	@Produce		json
//	@Param			id	path		int						true	"文档 ID"
//	@Success		200	{object}	types.PreviewResponse	"预览响应"
//	@Failure		404	{object}	map[string]string		"不存在"
//	@Router			/api/v1/documents/{id}/preview [get]
func PreviewDocument(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewPreviewService(c.Request.Context())

	resp, err := svc.Preview(c.Request.Context(), user, id)
	if err != nil {
		log.Logger().Error().Err(err).Uint("document_id", id).Msg("preview document failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

		return
	}

	metrics.PreviewCounter.WithLabelValues(string(resp.Mode)).Inc()

	c.JSON(http.StatusOK, resp)
}
