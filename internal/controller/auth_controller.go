package controller

import (
	"errors"

	"lexigrain_schedule/internal/service"
	"lexigrain_schedule/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthController 处理登录凭证透传相关的API请求
type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest 登录请求
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 登录
// @Description 登录请求代理到后端，成功后令牌缓存在本地供后续同步使用
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录请求"
// @Success 200 {object} util.Response{data=service.AuthStatus} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "后端不可达或凭证无效"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.Login(ctx.Request.Context(), request.Email, request.Password); err != nil {
		if errors.Is(err, util.ErrBackendUnavailable) {
			util.Unauthorized(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, c.AuthService.Status(ctx.Request.Context()))
}

// Logout godoc
// @Summary 登出
// @Description 清除本地缓存的令牌，后续同步以匿名方式降级进行
// @Tags 认证
// @Produce json
// @Success 204 {object} util.Response "已登出"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(ctx.Request.Context()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// Status godoc
// @Summary 登录状态
// @Description 返回是否持有可用令牌及其过期时间
// @Tags 认证
// @Produce json
// @Success 200 {object} util.Response{data=service.AuthStatus} "成功"
// @Router /api/auth/status [get]
func (c *AuthController) Status(ctx *gin.Context) {
	util.Success(ctx, c.AuthService.Status(ctx.Request.Context()))
}
