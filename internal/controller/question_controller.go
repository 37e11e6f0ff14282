package controller

import (
	"strconv"

	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary 创建题目
// @Tags 题目
// @Accept json
// @Produce json
// @Param body body service.QuestionRequest true "题目信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.Create(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary 批量创建题目
// @Description 先整体校验再落库，任一条不合法则全部放弃。
// @Tags 题目
// @Accept json
// @Produce json
// @Param body body []service.QuestionRequest true "题目列表"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /questions/bulk [post]
func (c *QuestionController) BulkCreate(ctx *gin.Context) {
	var reqs []service.QuestionRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	qs, err := c.Service.BulkCreate(reqs)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, qs)
}

// @Summary 随机抽题
// @Tags 题目
// @Produce json
// @Param limit query int false "数量（1-50，默认 10）"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/random [get]
func (c *QuestionController) Random(ctx *gin.Context) {
	_, limit := parsePagination(ctx, 10, 50)

	qs, err := c.Service.Random(limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary 题目列表
// @Tags 题目
// @Produce json
// @Param skip query int false "跳过条数"
// @Param limit query int false "返回条数（1-100，默认 10）"
// @Param categoria query string false "按分类过滤"
// @Param dificultad query string false "按难度过滤"
// @Param is_active query bool false "按启用状态过滤（默认 true）"
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	skip, limit := parsePagination(ctx, 10, 100)

	filter := repository.QuestionFilter{
		Categoria:  ctx.Query("categoria"),
		Dificultad: ctx.Query("dificultad"),
		Skip:       skip,
		Limit:      limit,
	}
	if v := ctx.Query("is_active"); v != "" {
		if active, err := strconv.ParseBool(v); err == nil {
			filter.IsActive = &active
		}
	}

	qs, err := c.Service.List(filter)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary 题目详情
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	q, err := c.Service.Get(id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 更新题目
// @Description 全字段替换，校验规则与创建一致。
// @Tags 题目
// @Accept json
// @Produce json
// @Param id path int true "题目ID"
// @Param body body service.QuestionRequest true "新的题目信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.Update(id, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 删除题目（软删除）
// @Description 仅置 is_active=false，保留既有答题记录。
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.Delete(id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"detail": "Pregunta eliminada"})
}
