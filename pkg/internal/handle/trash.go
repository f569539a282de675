package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/internal/types"
	"github.com/yeisme/stagevault/pkg/log"
)

// ListTrash 列出回收站中的文档.
//
//	@Summary	列出回收站
//	@Tags		回收站
//	@Produce	json
//	@Param		page	query		int						false	"页码"
//	@Param		size	query		int						false	"每页数量"
//	@Success	200		{object}	types.TrashListResponse	"回收站列表"
//	@Router		/api/v1/trash [get]
func ListTrash(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	svc := service.NewTrashService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), user, page, size)
	if err != nil {
		log.Logger().Error().Err(err).Msg("list trash failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// RestoreTrash 恢复回收站中的文档.
//
//	@Summary	恢复文档
//	@Tags		回收站
//	@Accept		json
//	@Produce	json
//	@Param		ids	body		types.TrashRestoreRequest		true	"文档 ID 列表"
//	@Success	200	{object}	types.TrashOperationResponse	"恢复结果"
//	@Router		/api/v1/trash/restore [post]
func RestoreTrash(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.TrashRestoreRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewTrashService(c.Request.Context())

	affected, err := svc.Restore(c.Request.Context(), user, req.IDs)
	if err != nil {
		log.Logger().Error().Err(err).Msg("restore trash failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, types.TrashOperationResponse{Affected: affected})
}

// PurgeTrash 永久删除回收站中的文档 (含对象本体).
//
//	@Summary	彻底删除文档
//	@Tags		回收站
//	@Accept		json
//	@Produce	json
//	@Param		ids	body		types.TrashRestoreRequest		true	"文档 ID 列表"
//	@Success	200	{object}	types.TrashOperationResponse	"删除结果"
//	@Router		/api/v1/trash/purge [post]
func PurgeTrash(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.TrashRestoreRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewTrashService(c.Request.Context())

	affected, err := svc.Purge(c.Request.Context(), user, req.IDs)
	if err != nil {
		log.Logger().Error().Err(err).Msg("purge trash failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, types.TrashOperationResponse{Affected: affected})
}
