package controller

import (
	"errors"

	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/service"
	"lexigrain_schedule/internal/util"

	"github.com/gin-gonic/gin"
)

// ScheduleController 处理周计划相关的API请求
type ScheduleController struct {
	ScheduleService *service.ScheduleService
}

func NewScheduleController(scheduleService *service.ScheduleService) *ScheduleController {
	return &ScheduleController{ScheduleService: scheduleService}
}

// ShiftWeekRequest 周游标移动请求
// swagger:model ShiftWeekRequest
type ShiftWeekRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ReplaceWeekRequest 整周覆盖请求
// swagger:model ReplaceWeekRequest
type ReplaceWeekRequest struct {
	Sessions []model.ScheduleSession `json:"sessions" binding:"required"`
	Source   model.WeekSource        `json:"source"`
}

// SplitRequest 会话拆分请求，date 为空时处理整周
// swagger:model SplitRequest
type SplitRequest struct {
	Date             string `json:"date"`
	ThresholdMinutes int    `json:"thresholdMinutes" binding:"omitempty,gt=0"`
}

// GetCurrentWeek godoc
// @Summary 获取当前周计划
// @Description 返回当前周号、会话列表、数据来源与统计，必要时从后端拉取或本地生成
// @Tags 周计划
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/schedule/current [get]
func (c *ScheduleController) GetCurrentWeek(ctx *gin.Context) {
	weekID, rec, stats := c.ScheduleService.CurrentWeek(ctx.Request.Context())

	util.Success(ctx, gin.H{
		"weekId":   weekID,
		"sessions": rec.Sessions,
		"source":   rec.Source,
		"stats":    stats,
	})
}

// ShiftWeek godoc
// @Summary 移动当前周游标
// @Description delta 为正向后、为负向前移动若干周，返回新周数据
// @Tags 周计划
// @Accept json
// @Produce json
// @Param request body ShiftWeekRequest true "移动请求"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/schedule/current/shift [post]
func (c *ScheduleController) ShiftWeek(ctx *gin.Context) {
	var request ShiftWeekRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	weekID := c.ScheduleService.ShiftWeek(ctx.Request.Context(), request.Delta)
	rec, _ := c.ScheduleService.Week(weekID)

	util.Success(ctx, gin.H{
		"weekId":   weekID,
		"sessions": rec.Sessions,
		"source":   rec.Source,
		"stats":    c.ScheduleService.Stats(weekID),
	})
}

// GetWeek godoc
// @Summary 获取指定周计划
// @Description 本地缺失时按远端优先、引导生成、占位数据的顺序补齐
// @Tags 周计划
// @Produce json
// @Param weekId path string true "ISO周号，形如 2024-W05"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "周号格式错误"
// @Router /api/schedule/weeks/{weekId} [get]
func (c *ScheduleController) GetWeek(ctx *gin.Context) {
	weekID := ctx.Param("weekId")
	if !util.ValidWeekID(weekID) {
		util.BadRequest(ctx, util.ErrBadWeekID.Error())
		return
	}

	rec := c.ScheduleService.EnsureWeek(ctx.Request.Context(), weekID)

	util.Success(ctx, gin.H{
		"weekId":   weekID,
		"sessions": rec.Sessions,
		"source":   rec.Source,
	})
}

// ReplaceWeek godoc
// @Summary 整周覆盖
// @Description 用请求体内容替换指定周的全部会话
// @Tags 周计划
// @Accept json
// @Produce json
// @Param weekId path string true "ISO周号"
// @Param request body ReplaceWeekRequest true "整周数据"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/schedule/weeks/{weekId} [put]
func (c *ScheduleController) ReplaceWeek(ctx *gin.Context) {
	weekID := ctx.Param("weekId")
	if !util.ValidWeekID(weekID) {
		util.BadRequest(ctx, util.ErrBadWeekID.Error())
		return
	}

	var request ReplaceWeekRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ScheduleService.ReplaceWeek(ctx.Request.Context(), weekID, request.Sessions, request.Source); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, _ := c.ScheduleService.Week(weekID)
	util.Success(ctx, gin.H{
		"weekId":   weekID,
		"sessions": rec.Sessions,
		"source":   rec.Source,
	})
}

// GetWeekStats godoc
// @Summary 获取周统计
// @Description 计划总分钟数、完成分钟数与完成率，无会话时完成率为 0
// @Tags 周计划
// @Produce json
// @Param weekId path string true "ISO周号"
// @Success 200 {object} util.Response{data=model.WeekStats} "成功"
// @Failure 400 {object} util.Response "周号格式错误"
// @Router /api/schedule/weeks/{weekId}/stats [get]
func (c *ScheduleController) GetWeekStats(ctx *gin.Context) {
	weekID := ctx.Param("weekId")
	if !util.ValidWeekID(weekID) {
		util.BadRequest(ctx, util.ErrBadWeekID.Error())
		return
	}

	util.Success(ctx, c.ScheduleService.Stats(weekID))
}

// AddSession godoc
// @Summary 新建学习会话
// @Description 本地写入立即生效，远端创建异步进行
// @Tags 会话
// @Accept json
// @Produce json
// @Param weekId path string true "ISO周号"
// @Param request body model.SessionDraft true "会话草稿"
// @Success 201 {object} util.Response{data=model.ScheduleSession} "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/schedule/weeks/{weekId}/sessions [post]
func (c *ScheduleController) AddSession(ctx *gin.Context) {
	weekID := ctx.Param("weekId")
	if !util.ValidWeekID(weekID) {
		util.BadRequest(ctx, util.ErrBadWeekID.Error())
		return
	}

	var draft model.SessionDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.ScheduleService.AddSession(ctx.Request.Context(), weekID, draft)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, session)
}

// UpdateSession godoc
// @Summary 部分更新会话
// @Description 请求体中缺失的字段保持不变，updatedAt 自动刷新
// @Tags 会话
// @Accept json
// @Produce json
// @Param weekId path string true "ISO周号"
// @Param id path string true "会话ID"
// @Param request body model.SessionPatch true "更新补丁"
// @Success 200 {object} util.Response{data=model.ScheduleSession} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/schedule/weeks/{weekId}/sessions/{id} [patch]
func (c *ScheduleController) UpdateSession(ctx *gin.Context) {
	weekID := ctx.Param("weekId")
	id := ctx.Param("id")

	var patch model.SessionPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.ScheduleService.UpdateSession(ctx.Request.Context(), weekID, id, patch)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, session)
}

// DeleteSession godoc
// @Summary 删除会话
// @Tags 会话
// @Produce json
// @Param weekId path string true "ISO周号"
// @Param id path string true "会话ID"
// @Success 204 {object} util.Response "已删除"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/schedule/weeks/{weekId}/sessions/{id} [delete]
func (c *ScheduleController) DeleteSession(ctx *gin.Context) {
	weekID := ctx.Param("weekId")
	id := ctx.Param("id")

	if err := c.ScheduleService.DeleteSession(ctx.Request.Context(), weekID, id); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// SplitSessions godoc
// @Summary 拆分长会话
// @Description 把当天只有一个且时长达到阈值的会话拆成两段，第二段轮换到下一门课
// @Tags 会话
// @Accept json
// @Produce json
// @Param weekId path string true "ISO周号"
// @Param request body SplitRequest false "拆分参数"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/schedule/weeks/{weekId}/split [post]
func (c *ScheduleController) SplitSessions(ctx *gin.Context) {
	weekID := ctx.Param("weekId")
	if !util.ValidWeekID(weekID) {
		util.BadRequest(ctx, util.ErrBadWeekID.Error())
		return
	}

	var request SplitRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	sessions := c.ScheduleService.SplitSessions(ctx.Request.Context(), weekID, request.Date, request.ThresholdMinutes)

	util.Success(ctx, gin.H{
		"weekId":   weekID,
		"sessions": sessions,
	})
}

// RegenerateWeek godoc
// @Summary 按引导偏好重新生成指定周
// @Description 丢弃该周已有会话，根据最新的引导偏好重建
// @Tags 周计划
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/schedule/weeks/{weekId}/regenerate [post]
func (c *ScheduleController) RegenerateWeek(ctx *gin.Context) {
	weekID := ctx.Param("weekId")
	if !util.ValidWeekID(weekID) {
		util.BadRequest(ctx, util.ErrBadWeekID.Error())
		return
	}

	rec := c.ScheduleService.RegenerateWeek(ctx.Request.Context(), weekID)

	util.Success(ctx, gin.H{
		"weekId":   weekID,
		"sessions": rec.Sessions,
		"source":   rec.Source,
	})
}
