package service_test

import (
	"testing"

	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerRecordComputesCorrectness(t *testing.T) {
	e := newEnv(t)
	q := e.mustQuestion(t, "Geografía", "fácil", 2)
	s := e.mustSession(t)

	correcta := e.mustAnswer(t, s.ID, q.ID, 2, intPtr(12))
	assert.True(t, correcta.EsCorrecta)
	require.NotNil(t, correcta.TiempoRespuestaSegundos)
	assert.Equal(t, 12, *correcta.TiempoRespuestaSegundos)

	q2 := e.mustQuestion(t, "Historia", "medio", 0)
	incorrecta := e.mustAnswer(t, s.ID, q2.ID, 3, nil)
	assert.False(t, incorrecta.EsCorrecta)
	assert.Nil(t, incorrecta.TiempoRespuestaSegundos)
}

func TestAnswerRecordPreconditions(t *testing.T) {
	e := newEnv(t)
	q := e.mustQuestion(t, "Ciencia", "medio", 1)
	s := e.mustSession(t)

	_, err := e.answers.Record(service.AnswerRequest{
		QuizSessionID:         999,
		QuestionID:            q.ID,
		RespuestaSeleccionada: intPtr(1),
	})
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = e.answers.Record(service.AnswerRequest{
		QuizSessionID:         s.ID,
		QuestionID:            999,
		RespuestaSeleccionada: intPtr(1),
	})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)

	_, err = e.answers.Record(service.AnswerRequest{
		QuizSessionID:         s.ID,
		QuestionID:            q.ID,
		RespuestaSeleccionada: intPtr(4),
	})
	require.Error(t, err)
	assert.True(t, util.IsValidationError(err))
}

func TestAnswerRecordRejectsDuplicate(t *testing.T) {
	e := newEnv(t)
	q := e.mustQuestion(t, "Tecnología", "difícil", 1)
	s := e.mustSession(t)

	original := e.mustAnswer(t, s.ID, q.ID, 1, intPtr(14))

	_, err := e.answers.Record(service.AnswerRequest{
		QuizSessionID:           s.ID,
		QuestionID:              q.ID,
		RespuestaSeleccionada:   intPtr(0),
		TiempoRespuestaSegundos: intPtr(99),
	})
	assert.ErrorIs(t, err, util.ErrDuplicateAnswer)

	// 被拒绝的重复提交不得触碰已有记录
	kept, err := e.answers.Get(original.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, kept.RespuestaSeleccionada)
	assert.True(t, kept.EsCorrecta)
	require.NotNil(t, kept.TiempoRespuestaSegundos)
	assert.Equal(t, 14, *kept.TiempoRespuestaSegundos)

	// 同一题在另一会话可以再次作答
	s2 := e.mustSession(t)
	e.mustAnswer(t, s2.ID, q.ID, 0, nil)
}

func TestAnswerListBySession(t *testing.T) {
	e := newEnv(t)
	q1 := e.mustQuestion(t, "Historia", "fácil", 1)
	q2 := e.mustQuestion(t, "Historia", "medio", 2)
	s := e.mustSession(t)

	e.mustAnswer(t, s.ID, q1.ID, 1, nil)
	e.mustAnswer(t, s.ID, q2.ID, 0, nil)

	answers, err := e.answers.ListBySession(s.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	// 按登记顺序返回
	assert.Equal(t, q1.ID, answers[0].QuestionID)
	assert.Equal(t, q2.ID, answers[1].QuestionID)

	_, err = e.answers.ListBySession(999, 0, 100)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestAnswerCorrectRecomputesFlag(t *testing.T) {
	e := newEnv(t)
	q := e.mustQuestion(t, "Ciencia", "fácil", 2)
	s := e.mustSession(t)

	a := e.mustAnswer(t, s.ID, q.ID, 0, intPtr(20))
	require.False(t, a.EsCorrecta)

	fixed, err := e.answers.Correct(a.ID, service.AnswerRequest{
		QuizSessionID:           s.ID,
		QuestionID:              q.ID,
		RespuestaSeleccionada:   intPtr(2),
		TiempoRespuestaSegundos: intPtr(25),
	})
	require.NoError(t, err)
	assert.True(t, fixed.EsCorrecta)
	assert.Equal(t, 2, fixed.RespuestaSeleccionada)
	require.NotNil(t, fixed.TiempoRespuestaSegundos)
	assert.Equal(t, 25, *fixed.TiempoRespuestaSegundos)

	// 会话与题目归属保持不变
	assert.Equal(t, s.ID, fixed.QuizSessionID)
	assert.Equal(t, q.ID, fixed.QuestionID)

	_, err = e.answers.Correct(999, service.AnswerRequest{
		QuizSessionID:         s.ID,
		QuestionID:            q.ID,
		RespuestaSeleccionada: intPtr(0),
	})
	assert.ErrorIs(t, err, util.ErrAnswerNotFound)
}
