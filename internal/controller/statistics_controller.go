package controller

import (
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Service *service.StatisticsService
}

func NewStatisticsController(svc *service.StatisticsService) *StatisticsController {
	return &StatisticsController{Service: svc}
}

// @Summary 全局统计
// @Description 启用题目数、已完成会话数、平均得分与错误率最高的前 5 个分类。
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /statistics/global [get]
func (c *StatisticsController) Global(ctx *gin.Context) {
	stats, err := c.Service.Global()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 会话统计
// @Description 得分、命中率、平均用时以及逐题作答明细。
// @Tags 统计
// @Produce json
// @Param id path int true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /statistics/session/{id} [get]
func (c *StatisticsController) Session(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	stats, err := c.Service.Session(id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 高错误率题目
// @Description 按错误率降序，零答题的题目不参与排行。
// @Tags 统计
// @Produce json
// @Param limit query int false "数量（1-50，默认 10）"
// @Success 200 {object} util.Response
// @Router /statistics/questions/difficult [get]
func (c *StatisticsController) DifficultQuestions(ctx *gin.Context) {
	_, limit := parsePagination(ctx, 10, 50)

	dificiles, err := c.Service.DifficultQuestions(limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, dificiles)
}

// @Summary 分类表现
// @Description 各分类的作答数、命中数与平均命中率；没有答题的分类也保留（promedio 为 0）。
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /statistics/categories [get]
func (c *StatisticsController) Categories(ctx *gin.Context) {
	rendimiento, err := c.Service.CategoryRanking()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, rendimiento)
}
