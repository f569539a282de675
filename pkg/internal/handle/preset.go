package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/internal/types"
	"github.com/yeisme/stagevault/pkg/rule"
)

// ListPresets 列出命名空间下的过滤预设.
//
//	@Summary	列出过滤预设
//	@Tags		预设
//	@Produce	json
//	@Param		namespace	path		string						true	"预设命名空间 (如 inventory、documents)"
//	@Success	200			{object}	types.PresetListResponse	"预设列表"
//	@Router		/api/v1/presets/{namespace} [get]
func ListPresets(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	namespace := c.Param("namespace")
	if namespace == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "namespace required"})
		return
	}

	svc := service.NewPresetService(c.Request.Context())

	c.JSON(http.StatusOK, svc.List(c.Request.Context(), user, namespace))
}

// SavePreset 保存一份新的过滤预设.
//
//	@Summary	保存过滤预设
//	@Tags		预设
//	@Accept		json
//	@Produce	json
//	@Param		namespace	path		string					true	"预设命名空间"
//	@Param		preset		body		types.SavePresetRequest	true	"预设内容"
//	@Success	200			{object}	filter.Preset			"保存的预设"
//	@Router		/api/v1/presets/{namespace} [post]
func SavePreset(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	namespace := c.Param("namespace")
	if namespace == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "namespace required"})
		return
	}

	var req types.SavePresetRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewPresetService(c.Request.Context())

	c.JSON(http.StatusOK, svc.Save(c.Request.Context(), user, namespace, &req))
}

// DeletePreset 删除过滤预设.
//
//	@Summary	删除过滤预设
//	@Tags		预设
//	@Produce	json
//	@Param		namespace	path		string				true	"预设命名空间"
//	@Param		id			path		string				true	"预设 ID"
//	@Success	200			{object}	map[string]string	"删除结果"
//	@Router		/api/v1/presets/{namespace}/{id} [delete]
func DeletePreset(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	namespace := c.Param("namespace")
	id := c.Param("id")

	if namespace == "" || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "namespace and id required"})
		return
	}

	svc := service.NewPresetService(c.Request.Context())
	svc.Delete(c.Request.Context(), user, namespace, id)

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
