package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/internal/types"
	"github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/rule"
)

// CreateScheduleEvent 创建排期事件.
//
//	@Summary	创建排期事件
//	@Tags		排期
//	@Accept		json
//	@Produce	json
//	@Param		event	body		types.CreateScheduleEventRequest	true	"排期事件"
//	@Success	200		{object}	types.ScheduleEventResponse			"创建结果"
//	@Router		/api/v1/schedule [post]
func CreateScheduleEvent(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.CreateScheduleEventRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewScheduleService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("create schedule event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetScheduleEvent 查询排期事件.
//
//	@Summary	查询排期事件
//	@Tags		排期
//	@Produce	json
//	@Param		id	path		int							true	"事件 ID"
//	@Success	200	{object}	types.ScheduleEventResponse	"事件详情"
//	@Router		/api/v1/schedule/{id} [get]
func GetScheduleEvent(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewScheduleService(c.Request.Context())

	resp, err := svc.Get(c.Request.Context(), user, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateScheduleEvent 更新排期事件.
//
//	@Summary	更新排期事件
//	@Tags		排期
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int									true	"事件 ID"
//	@Param		event	body		types.UpdateScheduleEventRequest	true	"更新字段"
//	@Success	200		{object}	types.ScheduleEventResponse			"更新结果"
//	@Router		/api/v1/schedule/{id} [put]
func UpdateScheduleEvent(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateScheduleEventRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewScheduleService(c.Request.Context())

	resp, err := svc.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("update schedule event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteScheduleEvent 取消排期事件.
//
//	@Summary	取消排期事件
//	@Tags		排期
//	@Produce	json
//	@Param		id	path		int					true	"事件 ID"
//	@Success	200	{object}	map[string]string	"取消结果"
//	@Router		/api/v1/schedule/{id} [delete]
func DeleteScheduleEvent(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewScheduleService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), user, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cancelled"})
}

// ListSchedule 按时间范围/类型列出排期.
//
//	@Summary	查询排期列表
//	@Tags		排期
//	@Produce	json
//	@Param		from	query		string						false	"开始时间 (RFC3339)"
//	@Param		to		query		string						false	"结束时间 (RFC3339)"
//	@Param		kind	query		string						false	"事件类型"
//	@Success	200		{object}	types.ListScheduleResponse	"排期列表"
//	@Router		/api/v1/schedule [get]
func ListSchedule(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req types.ListScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewScheduleService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("list schedule events failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}
