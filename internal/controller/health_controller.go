package controller

import (
	"errors"
	"net/http"

	"lexigrain_schedule/internal/service"
	"lexigrain_schedule/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store service.StorageProvider
}

func NewHealthController(store service.StorageProvider) *HealthController {
	return &HealthController{Store: store}
}

// @Summary 健康检查
// @Description 检查服务与本地存储状态，远端后端不影响健康判定
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 探测本地存储，键缺失属于正常情况
	if _, err := c.Store.Get(ctx.Request.Context(), util.StorageKeySchedule); err != nil && !errors.Is(err, util.ErrKeyNotFound) {
		util.Error(ctx, http.StatusServiceUnavailable, "Storage unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"storage": "up",
		},
	})
}
