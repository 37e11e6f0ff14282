package controller

import (
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	Service *service.AnswerService
}

func NewAnswerController(svc *service.AnswerService) *AnswerController {
	return &AnswerController{Service: svc}
}

// @Summary 登记答题
// @Description 校验会话、题目与选项索引，重复作答返回 409。
// @Tags 答题记录
// @Accept json
// @Produce json
// @Param body body service.AnswerRequest true "答题信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /answers [post]
func (c *AnswerController) Create(ctx *gin.Context) {
	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.Service.Record(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, answer)
}

// @Summary 会话的答题记录
// @Tags 答题记录
// @Produce json
// @Param sessionID path int true "会话ID"
// @Param skip query int false "跳过条数"
// @Param limit query int false "返回条数（1-100，默认 100）"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /answers/session/{sessionID} [get]
func (c *AnswerController) ListBySession(ctx *gin.Context) {
	sessionID, ok := parseUintParam(ctx, "sessionID")
	if !ok {
		util.BadRequest(ctx, "invalid session id")
		return
	}
	skip, limit := parsePagination(ctx, 100, 100)

	answers, err := c.Service.ListBySession(sessionID, skip, limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}

// @Summary 答题详情
// @Tags 答题记录
// @Produce json
// @Param id path int true "答题ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /answers/{id} [get]
func (c *AnswerController) Get(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	answer, err := c.Service.Get(id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// @Summary 修正答题
// @Description 更换所选选项并重算 es_correcta。
// @Tags 答题记录
// @Accept json
// @Produce json
// @Param id path int true "答题ID"
// @Param body body service.AnswerRequest true "新的答题信息"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /answers/{id} [put]
func (c *AnswerController) Update(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.Service.Correct(id, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}
