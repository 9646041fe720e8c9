package controller

import (
	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/service"
	"lexigrain_schedule/internal/util"

	"github.com/gin-gonic/gin"
)

// OnboardingController 处理引导偏好相关的API请求
type OnboardingController struct {
	OnboardingService *service.OnboardingService
}

func NewOnboardingController(onboardingService *service.OnboardingService) *OnboardingController {
	return &OnboardingController{OnboardingService: onboardingService}
}

// GetPreferences godoc
// @Summary 获取引导偏好
// @Description 优先取后端数据，离线时回退到本地草稿，两者都缺失时返回默认值
// @Tags 引导
// @Produce json
// @Success 200 {object} util.Response{data=model.OnboardingPreferences} "成功"
// @Router /api/onboarding/me [get]
func (c *OnboardingController) GetPreferences(ctx *gin.Context) {
	util.Success(ctx, c.OnboardingService.Get(ctx.Request.Context()))
}

// SavePreferences godoc
// @Summary 保存引导偏好
// @Description 本地保存立即生效，后端推送异步进行；保存后可调用重新生成接口刷新计划
// @Tags 引导
// @Accept json
// @Produce json
// @Param request body model.OnboardingPreferences true "引导偏好"
// @Success 200 {object} util.Response{data=model.OnboardingPreferences} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/onboarding/me [put]
func (c *OnboardingController) SavePreferences(ctx *gin.Context) {
	var prefs model.OnboardingPreferences
	if err := ctx.ShouldBindJSON(&prefs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.OnboardingService.Save(ctx.Request.Context(), prefs); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, prefs)
}
