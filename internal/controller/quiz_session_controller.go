package controller

import (
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizSessionController struct {
	Service *service.QuizSessionService
}

func NewQuizSessionController(svc *service.QuizSessionService) *QuizSessionController {
	return &QuizSessionController{Service: svc}
}

// @Summary 开始测验会话
// @Tags 测验会话
// @Accept json
// @Produce json
// @Param body body service.QuizSessionRequest true "会话信息（用户名可选）"
// @Success 201 {object} util.Response
// @Router /quiz-sessions [post]
func (c *QuizSessionController) Create(ctx *gin.Context) {
	var req service.QuizSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.Service.Create(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// @Summary 会话列表
// @Tags 测验会话
// @Produce json
// @Param skip query int false "跳过条数"
// @Param limit query int false "返回条数（1-100，默认 10）"
// @Success 200 {object} util.Response
// @Router /quiz-sessions [get]
func (c *QuizSessionController) List(ctx *gin.Context) {
	skip, limit := parsePagination(ctx, 10, 100)

	sessions, err := c.Service.List(skip, limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// @Summary 会话详情
// @Tags 测验会话
// @Produce json
// @Param id path int true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-sessions/{id} [get]
func (c *QuizSessionController) Get(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	session, err := c.Service.Get(id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// @Summary 结算会话
// @Description 汇总答题计算最终得分并置为 completado。重复调用会重新汇总。
// @Tags 测验会话
// @Produce json
// @Param id path int true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-sessions/{id}/complete [put]
func (c *QuizSessionController) Complete(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	session, err := c.Service.Complete(id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// @Summary 删除会话
// @Description 硬删除，级联删除该会话的全部答题记录。
// @Tags 测验会话
// @Produce json
// @Param id path int true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-sessions/{id} [delete]
func (c *QuizSessionController) Delete(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.Delete(id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"detail": "Sesión eliminada"})
}
