package service

import (
	"errors"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/util"

	"gorm.io/gorm"
)

type AnswerService struct {
	Answers   *repository.AnswerRepository
	Sessions  *repository.SessionRepository
	Questions *repository.QuestionRepository
}

func NewAnswerService(answers *repository.AnswerRepository, sessions *repository.SessionRepository, questions *repository.QuestionRepository) *AnswerService {
	return &AnswerService{Answers: answers, Sessions: sessions, Questions: questions}
}

// AnswerRequest 登记/修正答题的请求体。tiempo_respuesta_segundos 原样存储，
// 不做取值范围检查（允许 <= 0）。
type AnswerRequest struct {
	QuizSessionID           uint `json:"quiz_session_id" binding:"required"`
	QuestionID              uint `json:"question_id" binding:"required"`
	RespuestaSeleccionada   *int `json:"respuesta_seleccionada" binding:"required"`
	TiempoRespuestaSegundos *int `json:"tiempo_respuesta_segundos"`
}

// Record 登记答题。前置校验按序执行，命中第一个失败即返回：
// 会话存在 -> 题目存在 -> 选项索引在范围内 -> 该会话该题尚无答题。
// es_correcta 由选项索引与正确答案比对得出。
func (s *AnswerService) Record(req AnswerRequest) (*model.Answer, error) {
	if _, err := s.Sessions.FindByID(req.QuizSessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	question, err := s.Questions.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	seleccionada := *req.RespuestaSeleccionada
	if seleccionada < 0 || seleccionada >= len(question.Opciones) {
		return nil, util.NewValidationError("respuesta_seleccionada",
			"respuesta_seleccionada debe estar entre 0 y %d", len(question.Opciones)-1)
	}

	_, err = s.Answers.FindBySessionAndQuestion(req.QuizSessionID, req.QuestionID)
	if err == nil {
		return nil, util.ErrDuplicateAnswer
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	answer := &model.Answer{
		QuizSessionID:           req.QuizSessionID,
		QuestionID:              req.QuestionID,
		RespuestaSeleccionada:   seleccionada,
		EsCorrecta:              seleccionada == question.RespuestaCorrecta,
		TiempoRespuestaSegundos: req.TiempoRespuestaSegundos,
	}

	if err := s.Answers.Create(answer); err != nil {
		// 并发重复提交由存储层唯一索引裁决，落败方视为冲突
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrDuplicateAnswer
		}
		return nil, err
	}
	return answer, nil
}

func (s *AnswerService) Get(id uint) (*model.Answer, error) {
	answer, err := s.Answers.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAnswerNotFound
	}
	return answer, err
}

func (s *AnswerService) ListBySession(sessionID uint, skip, limit int) ([]model.Answer, error) {
	if _, err := s.Sessions.FindByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	return s.Answers.ListBySession(sessionID, skip, limit)
}

// Correct 修正既有答题：按请求中的题目重新做范围校验并重算 es_correcta。
// 只改写该答题自身的行，不重查 (会话, 题目) 唯一性。
func (s *AnswerService) Correct(id uint, req AnswerRequest) (*model.Answer, error) {
	answer, err := s.Answers.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAnswerNotFound
		}
		return nil, err
	}

	question, err := s.Questions.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	seleccionada := *req.RespuestaSeleccionada
	if seleccionada < 0 || seleccionada >= len(question.Opciones) {
		return nil, util.NewValidationError("respuesta_seleccionada",
			"respuesta_seleccionada debe estar entre 0 y %d", len(question.Opciones)-1)
	}

	answer.RespuestaSeleccionada = seleccionada
	answer.EsCorrecta = seleccionada == question.RespuestaCorrecta
	answer.TiempoRespuestaSegundos = req.TiempoRespuestaSegundos

	if err := s.Answers.Update(answer); err != nil {
		return nil, err
	}
	return answer, nil
}
