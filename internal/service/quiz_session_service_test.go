package service_test

import (
	"testing"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateStartsInProgress(t *testing.T) {
	e := newEnv(t)

	s, err := e.sessions.Create(service.QuizSessionRequest{UsuarioNombre: strPtr("Luis")})
	require.NoError(t, err)

	assert.Equal(t, model.SessionInProgress, s.Estado)
	assert.Nil(t, s.FechaFin)
	assert.Zero(t, s.PuntuacionTotal)
	assert.False(t, s.FechaInicio.IsZero())

	// usuario_nombre 可省略
	anon, err := e.sessions.Create(service.QuizSessionRequest{})
	require.NoError(t, err)
	assert.Nil(t, anon.UsuarioNombre)
}

func TestSessionCompleteTruncatesScore(t *testing.T) {
	e := newEnv(t)
	s := e.mustSession(t)

	q1 := e.mustQuestion(t, "Tecnología", "fácil", 2)
	q2 := e.mustQuestion(t, "Historia", "medio", 1)
	q3 := e.mustQuestion(t, "Ciencia", "difícil", 0)

	e.mustAnswer(t, s.ID, q1.ID, 2, intPtr(10)) // correcta
	e.mustAnswer(t, s.ID, q2.ID, 1, intPtr(15)) // correcta
	e.mustAnswer(t, s.ID, q3.ID, 3, intPtr(5))  // incorrecta

	done, err := e.sessions.Complete(s.ID)
	require.NoError(t, err)

	// 2/3 correctas: 66, no 67
	assert.Equal(t, 66, done.PuntuacionTotal)
	assert.Equal(t, 3, done.PreguntasRespondidas)
	assert.Equal(t, 2, done.PreguntasCorrectas)
	assert.Equal(t, model.SessionCompleted, done.Estado)
	require.NotNil(t, done.FechaFin)
	require.NotNil(t, done.TiempoTotalSegundos)
	assert.Equal(t, 30, *done.TiempoTotalSegundos)
}

func TestSessionCompleteWithoutAnswers(t *testing.T) {
	e := newEnv(t)
	s := e.mustSession(t)

	done, err := e.sessions.Complete(s.ID)
	require.NoError(t, err)

	assert.Zero(t, done.PuntuacionTotal)
	assert.Zero(t, done.PreguntasRespondidas)
	assert.Nil(t, done.TiempoTotalSegundos)
	assert.Equal(t, model.SessionCompleted, done.Estado)

	_, err = e.sessions.Complete(999)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSessionCompleteRecomputesOnRepeat(t *testing.T) {
	e := newEnv(t)
	s := e.mustSession(t)
	q := e.mustQuestion(t, "Geografía", "fácil", 2)

	first, err := e.sessions.Complete(s.ID)
	require.NoError(t, err)
	assert.Zero(t, first.PuntuacionTotal)

	// 结算后补登答题，再次结算按当前答题重新汇总
	e.mustAnswer(t, s.ID, q.ID, 2, nil)
	second, err := e.sessions.Complete(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, second.PuntuacionTotal)
	assert.Equal(t, 1, second.PreguntasRespondidas)
}

func TestSessionDeleteCascadesAnswers(t *testing.T) {
	e := newEnv(t)
	s := e.mustSession(t)
	q := e.mustQuestion(t, "Historia", "fácil", 1)
	a := e.mustAnswer(t, s.ID, q.ID, 1, nil)

	require.NoError(t, e.sessions.Delete(s.ID))

	_, err := e.sessions.Get(s.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = e.answers.Get(a.ID)
	assert.ErrorIs(t, err, util.ErrAnswerNotFound)

	assert.ErrorIs(t, e.sessions.Delete(s.ID), util.ErrSessionNotFound)
}

func TestSessionEndToEndPerfectScore(t *testing.T) {
	e := newEnv(t)
	s := e.mustSession(t)

	q1 := e.mustQuestion(t, "Tecnología", "fácil", 1)
	q2 := e.mustQuestion(t, "Ciencia", "medio", 0)

	e.mustAnswer(t, s.ID, q1.ID, 1, intPtr(8))
	e.mustAnswer(t, s.ID, q2.ID, 0, intPtr(9))

	done, err := e.sessions.Complete(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, done.PuntuacionTotal)
	assert.Equal(t, 2, done.PreguntasCorrectas)
	require.NotNil(t, done.TiempoTotalSegundos)
	assert.Equal(t, 17, *done.TiempoTotalSegundos)
}
