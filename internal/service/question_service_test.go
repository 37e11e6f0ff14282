package service_test

import (
	"testing"

	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionCreateCanonicalizesVocabulary(t *testing.T) {
	e := newEnv(t)

	q, err := e.questions.Create(questionReq("TECNOLOGIA", "FACIL", 2))
	require.NoError(t, err)

	assert.Equal(t, "Tecnología", q.Categoria)
	assert.Equal(t, "fácil", q.Dificultad)
	assert.True(t, q.IsActive)
}

func TestQuestionCreateValidation(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name   string
		mutate func(*service.QuestionRequest)
		field  string
	}{
		{
			name: "menos de 3 opciones",
			mutate: func(r *service.QuestionRequest) {
				r.Opciones = []string{"sí", "no"}
				r.RespuestaCorrecta = intPtr(0)
			},
			field: "opciones",
		},
		{
			name: "más de 5 opciones",
			mutate: func(r *service.QuestionRequest) {
				r.Opciones = []string{"a", "b", "c", "d", "e", "f"}
			},
			field: "opciones",
		},
		{
			name: "respuesta_correcta fuera de rango",
			mutate: func(r *service.QuestionRequest) {
				r.RespuestaCorrecta = intPtr(4)
			},
			field: "respuesta_correcta",
		},
		{
			name: "respuesta_correcta negativa",
			mutate: func(r *service.QuestionRequest) {
				r.RespuestaCorrecta = intPtr(-1)
			},
			field: "respuesta_correcta",
		},
		{
			name: "categoría desconocida",
			mutate: func(r *service.QuestionRequest) {
				r.Categoria = "Deportes"
			},
			field: "categoria",
		},
		{
			name: "dificultad desconocida",
			mutate: func(r *service.QuestionRequest) {
				r.Dificultad = "imposible"
			},
			field: "dificultad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := questionReq("Tecnología", "fácil", 2)
			tt.mutate(&req)

			_, err := e.questions.Create(req)
			require.Error(t, err)
			require.True(t, util.IsValidationError(err))

			var ve *util.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestQuestionBulkCreateAllOrNothing(t *testing.T) {
	e := newEnv(t)

	good := questionReq("Historia", "medio", 1)
	bad := questionReq("Ciencia", "difícil", 1)
	bad.Opciones = []string{"solo", "dos"}
	bad.RespuestaCorrecta = intPtr(0)

	_, err := e.questions.BulkCreate([]service.QuestionRequest{good, bad})
	require.Error(t, err)
	require.True(t, util.IsValidationError(err))
	assert.Contains(t, err.Error(), "pregunta 1")

	// 第一条也不应落库
	list, err := e.questions.List(repository.QuestionFilter{Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := e.questions.BulkCreate([]service.QuestionRequest{
		questionReq("Historia", "medio", 1),
		questionReq("Ciencia", "difícil", 0),
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotZero(t, created[0].ID)
	assert.NotZero(t, created[1].ID)
}

func TestQuestionRandomRequiresActiveQuestions(t *testing.T) {
	e := newEnv(t)

	_, err := e.questions.Random(5)
	assert.ErrorIs(t, err, util.ErrNoActiveQuestions)

	q := e.mustQuestion(t, "Geografía", "fácil", 2)
	qs, err := e.questions.Random(5)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, q.ID, qs[0].ID)

	// 下架后重新归于无题可抽
	require.NoError(t, e.questions.Delete(q.ID))
	_, err = e.questions.Random(5)
	assert.ErrorIs(t, err, util.ErrNoActiveQuestions)
}

func TestQuestionSoftDelete(t *testing.T) {
	e := newEnv(t)

	q := e.mustQuestion(t, "Ciencia", "medio", 1)
	require.NoError(t, e.questions.Delete(q.ID))

	// 仍可按 id 查到，但默认列表不再出现
	got, err := e.questions.Get(q.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	activos, err := e.questions.List(repository.QuestionFilter{Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, activos)

	inactive := false
	inactivos, err := e.questions.List(repository.QuestionFilter{IsActive: &inactive, Limit: 100})
	require.NoError(t, err)
	require.Len(t, inactivos, 1)
	assert.Equal(t, q.ID, inactivos[0].ID)
}

func TestQuestionUpdateReplacesAllFields(t *testing.T) {
	e := newEnv(t)

	q := e.mustQuestion(t, "Tecnología", "fácil", 2)

	req := service.QuestionRequest{
		Pregunta:          "¿Qué es SQLAlchemy?",
		Opciones:          []string{"Un gestor de paquetes", "Un ORM de Python", "Un servidor web"},
		RespuestaCorrecta: intPtr(1),
		Explicacion:       strPtr("Es un ORM"),
		Categoria:         "tecnologia",
		Dificultad:        "MEDIO",
	}
	updated, err := e.questions.Update(q.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "¿Qué es SQLAlchemy?", updated.Pregunta)
	assert.Len(t, updated.Opciones, 3)
	assert.Equal(t, 1, updated.RespuestaCorrecta)
	assert.Equal(t, "Tecnología", updated.Categoria)
	assert.Equal(t, "medio", updated.Dificultad)

	_, err = e.questions.Update(9999, req)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestQuestionGetNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.questions.Get(42)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}
