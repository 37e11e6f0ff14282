package service

import (
	"errors"
	"math/rand"
	"strings"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/util"
	"quiz_api_backend/internal/vocab"

	"gorm.io/gorm"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

// QuestionRequest 创建/更新题目的请求体。RespuestaCorrecta 用指针以区分 0 与缺省。
type QuestionRequest struct {
	Pregunta          string   `json:"pregunta" binding:"required"`
	Opciones          []string `json:"opciones" binding:"required"`
	RespuestaCorrecta *int     `json:"respuesta_correcta" binding:"required"`
	Explicacion       *string  `json:"explicacion"`
	Categoria         string   `json:"categoria" binding:"required"`
	Dificultad        string   `json:"dificultad" binding:"required"`
}

// validate 按固定顺序逐字段校验，命中第一个错误即返回：
// 选项数量 -> 正确答案索引 -> 分类 -> 难度。
func (s *QuestionService) validate(req QuestionRequest) (*model.Question, error) {
	if len(req.Opciones) < 3 || len(req.Opciones) > 5 {
		return nil, util.NewValidationError("opciones", "Debe haber entre 3 y 5 opciones")
	}

	idx := *req.RespuestaCorrecta
	if idx < 0 || idx >= len(req.Opciones) {
		return nil, util.NewValidationError("respuesta_correcta",
			"respuesta_correcta debe estar entre 0 y %d", len(req.Opciones)-1)
	}

	categoria, ok := vocab.CanonicalCategory(req.Categoria)
	if !ok {
		return nil, util.NewValidationError("categoria",
			"Categoría debe ser una de: %s", strings.Join(vocab.Categories, ", "))
	}

	dificultad, ok := vocab.CanonicalDifficulty(req.Dificultad)
	if !ok {
		return nil, util.NewValidationError("dificultad",
			"Dificultad debe ser una de: %s", strings.Join(vocab.Difficulties, ", "))
	}

	return &model.Question{
		Pregunta:          req.Pregunta,
		Opciones:          req.Opciones,
		RespuestaCorrecta: idx,
		Explicacion:       req.Explicacion,
		Categoria:         categoria,
		Dificultad:        dificultad,
		IsActive:          true,
	}, nil
}

func (s *QuestionService) Create(req QuestionRequest) (*model.Question, error) {
	q, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// BulkCreate 先整体校验再单事务写入：任一条不合法则一条都不落库，
// 错误消息带失败条目的序号。
func (s *QuestionService) BulkCreate(reqs []QuestionRequest) ([]model.Question, error) {
	qs := make([]*model.Question, 0, len(reqs))
	for i, req := range reqs {
		q, err := s.validate(req)
		if err != nil {
			var ve *util.ValidationError
			if errors.As(err, &ve) {
				return nil, util.NewValidationError(ve.Field, "pregunta %d: %s", i, ve.Message)
			}
			return nil, err
		}
		qs = append(qs, q)
	}

	if err := s.Repo.CreateBatch(qs); err != nil {
		return nil, err
	}

	created := make([]model.Question, len(qs))
	for i, q := range qs {
		created[i] = *q
	}
	return created, nil
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	q, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return q, err
}

func (s *QuestionService) List(filter repository.QuestionFilter) ([]model.Question, error) {
	return s.Repo.List(filter)
}

// Random 随机抽取至多 limit 道启用题目；无可用题目时报 NotFound。
func (s *QuestionService) Random(limit int) ([]model.Question, error) {
	qs, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, util.ErrNoActiveQuestions
	}

	shuffled := make([]model.Question, len(qs))
	copy(shuffled, qs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	return shuffled[:limit], nil
}

// Update 全字段替换，校验规则与创建一致。
func (s *QuestionService) Update(id uint, req QuestionRequest) (*model.Question, error) {
	existing, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}

	validated, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	existing.Pregunta = validated.Pregunta
	existing.Opciones = validated.Opciones
	existing.RespuestaCorrecta = validated.RespuestaCorrecta
	existing.Explicacion = validated.Explicacion
	existing.Categoria = validated.Categoria
	existing.Dificultad = validated.Dificultad

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 软删除：只置 is_active=false，已有答题记录保持可查。
func (s *QuestionService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.Repo.SoftDelete(id)
}
