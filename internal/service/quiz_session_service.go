package service

import (
	"errors"
	"time"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/util"

	"gorm.io/gorm"
)

type QuizSessionService struct {
	Sessions *repository.SessionRepository
	Answers  *repository.AnswerRepository
}

func NewQuizSessionService(sessions *repository.SessionRepository, answers *repository.AnswerRepository) *QuizSessionService {
	return &QuizSessionService{Sessions: sessions, Answers: answers}
}

type QuizSessionRequest struct {
	UsuarioNombre *string `json:"usuario_nombre"`
}

func (s *QuizSessionService) Create(req QuizSessionRequest) (*model.QuizSession, error) {
	session := &model.QuizSession{
		UsuarioNombre: req.UsuarioNombre,
		FechaInicio:   time.Now().UTC(),
		Estado:        model.SessionInProgress,
	}
	if err := s.Sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *QuizSessionService) Get(id uint) (*model.QuizSession, error) {
	session, err := s.Sessions.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	return session, err
}

func (s *QuizSessionService) List(skip, limit int) ([]model.QuizSession, error) {
	return s.Sessions.List(skip, limit)
}

// Complete 结算会话：汇总答题、按整除计算百分比得分并翻转状态。
// 有意不做幂等保护，重复调用会基于当前答题重新汇总并覆盖。
func (s *QuizSessionService) Complete(id uint) (*model.QuizSession, error) {
	session, err := s.Sessions.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	answers, err := s.Answers.ListAllBySession(id)
	if err != nil {
		return nil, err
	}

	respondidas := len(answers)
	correctas := 0
	tiempoTotal := 0
	for _, a := range answers {
		if a.EsCorrecta {
			correctas++
		}
		if a.TiempoRespuestaSegundos != nil {
			tiempoTotal += *a.TiempoRespuestaSegundos
		}
	}

	// 整除截断，2/3 正确 => 66 而不是 67
	puntuacion := 0
	if respondidas > 0 {
		puntuacion = correctas * 100 / respondidas
	}

	now := time.Now().UTC()
	session.FechaFin = &now
	session.PreguntasRespondidas = respondidas
	session.PreguntasCorrectas = correctas
	session.PuntuacionTotal = puntuacion
	if tiempoTotal > 0 {
		session.TiempoTotalSegundos = &tiempoTotal
	} else {
		session.TiempoTotalSegundos = nil
	}
	session.Estado = model.SessionCompleted

	if err := s.Sessions.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete 硬删除，连同其答题记录一并移除。
func (s *QuizSessionService) Delete(id uint) error {
	if _, err := s.Sessions.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}
	return s.Sessions.Delete(id)
}
