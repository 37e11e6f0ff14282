package service_test

import (
	"testing"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/service"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// env 每个测试独立的内存库与完整服务栈。
type env struct {
	db         *gorm.DB
	questions  *service.QuestionService
	sessions   *service.QuizSessionService
	answers    *service.AnswerService
	statistics *service.StatisticsService

	questionRepo *repository.QuestionRepository
	sessionRepo  *repository.SessionRepository
	answerRepo   *repository.AnswerRepository
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Question{}, &model.QuizSession{}, &model.Answer{}))

	qr := repository.NewQuestionRepository(db)
	sr := repository.NewSessionRepository(db)
	ar := repository.NewAnswerRepository(db)

	return &env{
		db:           db,
		questions:    service.NewQuestionService(qr),
		sessions:     service.NewQuizSessionService(sr, ar),
		answers:      service.NewAnswerService(ar, sr, qr),
		statistics:   service.NewStatisticsService(qr, sr, ar),
		questionRepo: qr,
		sessionRepo:  sr,
		answerRepo:   ar,
	}
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func questionReq(categoria, dificultad string, correcta int) service.QuestionRequest {
	return service.QuestionRequest{
		Pregunta:          "¿Cuál es la capital de Francia?",
		Opciones:          []string{"Lyon", "Marsella", "París", "Toulouse"},
		RespuestaCorrecta: intPtr(correcta),
		Categoria:         categoria,
		Dificultad:        dificultad,
	}
}

func (e *env) mustQuestion(t *testing.T, categoria, dificultad string, correcta int) *model.Question {
	t.Helper()
	q, err := e.questions.Create(questionReq(categoria, dificultad, correcta))
	require.NoError(t, err)
	return q
}

func (e *env) mustSession(t *testing.T) *model.QuizSession {
	t.Helper()
	s, err := e.sessions.Create(service.QuizSessionRequest{UsuarioNombre: strPtr("Ana")})
	require.NoError(t, err)
	return s
}

func (e *env) mustAnswer(t *testing.T, sessionID, questionID uint, seleccionada int, tiempo *int) *model.Answer {
	t.Helper()
	a, err := e.answers.Record(service.AnswerRequest{
		QuizSessionID:           sessionID,
		QuestionID:              questionID,
		RespuestaSeleccionada:   intPtr(seleccionada),
		TiempoRespuestaSegundos: tiempo,
	})
	require.NoError(t, err)
	return a
}
