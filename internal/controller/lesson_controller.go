package controller

import (
	"lexigrain_schedule/internal/service"
	"lexigrain_schedule/internal/util"

	"github.com/gin-gonic/gin"
)

// LessonController 处理课程目录相关的API请求
type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// ListLessons godoc
// @Summary 获取课程目录
// @Description 远端目录短期缓存并镜像到本地，离线时回退到内置课程池
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	lessons := c.LessonService.List(ctx.Request.Context())
	util.Success(ctx, gin.H{
		"items": lessons,
		"total": len(lessons),
	})
}
