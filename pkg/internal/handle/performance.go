package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/internal/types"
	"github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/rule"
)

// CreatePerformance 创建剧目.
//
//	@Summary	创建剧目
//	@Tags		剧目
//	@Accept		json
//	@Produce	json
//	@Param		performance	body		types.CreatePerformanceRequest	true	"剧目信息"
//	@Success	200			{object}	types.PerformanceResponse		"创建结果"
//	@Router		/api/v1/performances [post]
func CreatePerformance(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.CreatePerformanceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewPerformanceService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("create performance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPerformance 查询剧目.
//
//	@Summary	查询剧目
//	@Tags		剧目
//	@Produce	json
//	@Param		id	path		int							true	"剧目 ID"
//	@Success	200	{object}	types.PerformanceResponse	"剧目详情"
//	@Router		/api/v1/performances/{id} [get]
func GetPerformance(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewPerformanceService(c.Request.Context())

	resp, err := svc.Get(c.Request.Context(), user, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePerformance 更新剧目.
//
//	@Summary	更新剧目
//	@Tags		剧目
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int								true	"剧目 ID"
//	@Param		performance	body		types.UpdatePerformanceRequest	true	"更新字段"
//	@Success	200			{object}	types.PerformanceResponse		"更新结果"
//	@Router		/api/v1/performances/{id} [put]
func UpdatePerformance(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdatePerformanceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewPerformanceService(c.Request.Context())

	resp, err := svc.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("update performance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePerformance 删除剧目 (软删除).
//
//	@Summary	删除剧目
//	@Tags		剧目
//	@Produce	json
//	@Param		id	path		int					true	"剧目 ID"
//	@Success	200	{object}	map[string]string	"删除结果"
//	@Router		/api/v1/performances/{id} [delete]
func DeletePerformance(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewPerformanceService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), user, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ListPerformances 列出剧目.
//
//	@Summary	搜索剧目
//	@Tags		剧目
//	@Accept		json
//	@Produce	json
//	@Param		query	body		types.ListPerformancesRequest	true	"搜索条件"
//	@Success	200		{object}	types.ListPerformancesResponse	"搜索结果"
//	@Router		/api/v1/performances/search [post]
func ListPerformances(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.ListPerformancesRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewPerformanceService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("list performances failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPerformanceDocuments 列出剧目关联文档.
//
//	@Summary	剧目文档列表
//	@Tags		剧目
//	@Produce	json
//	@Param		id		path		int								true	"剧目 ID"
//	@Param		page	query		int								false	"页码"
//	@Param		size	query		int								false	"每页数量"
//	@Success	200		{object}	types.SearchDocumentsResponse	"文档列表"
//	@Router		/api/v1/performances/{id}/documents [get]
func ListPerformanceDocuments(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	svc := service.NewDocumentService(c.Request.Context())

	resp, err := svc.ListByPerformance(c.Request.Context(), user, id,
		types.Pagination{Page: page, PageSize: size})
	if err != nil {
		log.Logger().Error().Err(err).Msg("list performance documents failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPassport 读取剧目技术护照.
//
//	@Summary	读取技术护照
//	@Tags		剧目
//	@Produce	json
//	@Param		id	path		int						true	"剧目 ID"
//	@Success	200	{object}	types.PassportResponse	"技术护照"
//	@Router		/api/v1/performances/{id}/passport [get]
func GetPassport(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewPerformanceService(c.Request.Context())

	resp, err := svc.GetPassport(c.Request.Context(), user, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePassport 更新剧目技术护照 (分区整体覆盖, 版本递增).
//
//	@Summary	更新技术护照
//	@Tags		剧目
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int							true	"剧目 ID"
//	@Param		passport	body		types.UpdatePassportRequest	true	"护照分区"
//	@Success	200			{object}	types.PassportResponse		"更新后的护照"
//	@Router		/api/v1/performances/{id}/passport [put]
func UpdatePassport(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdatePassportRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewPerformanceService(c.Request.Context())

	resp, err := svc.UpdatePassport(c.Request.Context(), user, id, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("update passport failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}
