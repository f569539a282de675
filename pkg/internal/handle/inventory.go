package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/internal/types"
	"github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/rule"
)

// CreateInventoryItem 创建库存物品.
//
//	@Summary		创建库存物品
//	@Description	创建道具/服装/设备等库存条目
//	@Tags			库存
//	@Accept			json
//	@Produce		json
//	@Param			item	body		types.CreateInventoryItemRequest	true	"库存物品"
//	@Success		200		{object}	types.InventoryItemResponse			"创建结果"
//	@Failure		400		{object}	map[string]string					"请求参数错误"
//	@Failure		500		{object}	map[string]string					"服务器内部错误"
//	@Router			/api/v1/inventory [post]
func CreateInventoryItem(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.CreateInventoryItemRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewInventoryService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("create inventory item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInventoryItem 查询库存物品.
//
//	@Summary	查询库存物品
//	@Tags		库存
//	@Produce	json
//	@Param		id	path		int							true	"物品 ID"
//	@Success	200	{object}	types.InventoryItemResponse	"物品详情"
//	@Failure	404	{object}	map[string]string			"不存在"
//	@Router		/api/v1/inventory/{id} [get]
func GetInventoryItem(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewInventoryService(c.Request.Context())

	resp, err := svc.Get(c.Request.Context(), user, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateInventoryItem 更新库存物品.
//
//	@Summary	更新库存物品
//	@Tags		库存
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int									true	"物品 ID"
//	@Param		item	body		types.UpdateInventoryItemRequest	true	"更新字段"
//	@Success	200		{object}	types.InventoryItemResponse			"更新结果"
//	@Router		/api/v1/inventory/{id} [put]
func UpdateInventoryItem(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateInventoryItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewInventoryService(c.Request.Context())

	resp, err := svc.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("update inventory item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteInventoryItem 删除库存物品 (软删除).
//
//	@Summary	删除库存物品
//	@Tags		库存
//	@Produce	json
//	@Param		id	path		int					true	"物品 ID"
//	@Success	200	{object}	map[string]string	"删除结果"
//	@Router		/api/v1/inventory/{id} [delete]
func DeleteInventoryItem(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewInventoryService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), user, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// SearchInventory 搜索库存.
//
//	@Summary		搜索库存
//	@Description	按过滤条件/关键字/排序搜索库存物品
//	@Tags			库存
//	@Accept			json
//	@Produce		json
//	@Param			query	body		types.SearchInventoryRequest	true	"搜索条件"
//	@Success		200		{object}	types.SearchInventoryResponse	"搜索结果"
//	@Router			/api/v1/inventory/search [post]
func SearchInventory(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.SearchInventoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewInventoryService(c.Request.Context())

	resp, err := svc.Search(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("search inventory failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}
