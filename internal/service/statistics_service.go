package service

import (
	"errors"
	"math"
	"sort"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/util"

	"gorm.io/gorm"
)

// StatisticsService 只读聚合，不产生任何副作用。
type StatisticsService struct {
	Questions *repository.QuestionRepository
	Sessions  *repository.SessionRepository
	Answers   *repository.AnswerRepository
}

func NewStatisticsService(questions *repository.QuestionRepository, sessions *repository.SessionRepository, answers *repository.AnswerRepository) *StatisticsService {
	return &StatisticsService{Questions: questions, Sessions: sessions, Answers: answers}
}

type CategoryErrorRate struct {
	Categoria string  `json:"categoria"`
	TasaError float64 `json:"tasa_error"`
}

type GlobalStatistics struct {
	TotalPreguntasActivas    int64               `json:"total_preguntas_activas"`
	TotalSesionesCompletadas int64               `json:"total_sesiones_completadas"`
	PromedioAciertos         float64             `json:"promedio_aciertos"`
	CategoriasDificiles      []CategoryErrorRate `json:"categorias_dificiles"`
}

type AnswerSummary struct {
	QuestionID            uint    `json:"question_id"`
	Pregunta              *string `json:"pregunta"`
	RespuestaSeleccionada int     `json:"respuesta_seleccionada"`
	EsCorrecta            bool    `json:"es_correcta"`
	TiempoSegundos        *int    `json:"tiempo_segundos"`
}

type SessionStatistics struct {
	SessionID              uint            `json:"session_id"`
	Usuario                *string         `json:"usuario"`
	PuntuacionFinal        int             `json:"puntuacion_final"`
	PorcentajeAciertos     float64         `json:"porcentaje_aciertos"`
	PreguntasRespondidas   int             `json:"preguntas_respondidas"`
	PreguntasCorrectas     int             `json:"preguntas_correctas"`
	TiempoPromedioSegundos *float64        `json:"tiempo_promedio_segundos"`
	TiempoTotalSegundos    *int            `json:"tiempo_total_segundos"`
	ResumenRespuestas      []AnswerSummary `json:"resumen_respuestas"`
}

type DifficultQuestion struct {
	QuestionID      uint    `json:"question_id"`
	Pregunta        string  `json:"pregunta"`
	Categoria       string  `json:"categoria"`
	Dificultad      string  `json:"dificultad"`
	VecesRespondida int     `json:"veces_respondida"`
	VecesIncorrecta int     `json:"veces_incorrecta"`
	TasaError       float64 `json:"tasa_error"`
}

type CategoryPerformance struct {
	Categoria        string  `json:"categoria"`
	NumPreguntas     int     `json:"num_preguntas"`
	NumRespuestas    int     `json:"num_respuestas"`
	Aciertos         int     `json:"aciertos"`
	PromedioAciertos float64 `json:"promedio_aciertos"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Global 全局统计：启用题目数、已完成会话数、平均得分，以及错误率最高的前 5 个分类。
// 没有任何答题的分类不参与排行（区别于 CategoryRanking 的零值保留策略）。
func (s *StatisticsService) Global() (*GlobalStatistics, error) {
	totalPreguntas, err := s.Questions.CountActive()
	if err != nil {
		return nil, err
	}

	completadas, err := s.Sessions.ListByEstado(model.SessionCompleted)
	if err != nil {
		return nil, err
	}

	promedio := 0.0
	if len(completadas) > 0 {
		suma := 0
		for _, ses := range completadas {
			suma += ses.PuntuacionTotal
		}
		promedio = float64(suma) / float64(len(completadas))
	}

	categorias, err := s.Questions.ActiveCategories()
	if err != nil {
		return nil, err
	}

	dificiles := make([]CategoryErrorRate, 0, len(categorias))
	for _, categoria := range categorias {
		preguntas, err := s.Questions.ListActiveByCategoria(categoria)
		if err != nil {
			return nil, err
		}
		answers, err := s.Answers.ListByQuestionIDs(questionIDs(preguntas))
		if err != nil {
			return nil, err
		}
		total := len(answers)
		if total == 0 {
			continue
		}
		correctas := 0
		for _, a := range answers {
			if a.EsCorrecta {
				correctas++
			}
		}
		tasaError := float64(total-correctas) / float64(total) * 100
		dificiles = append(dificiles, CategoryErrorRate{
			Categoria: categoria,
			TasaError: round2(tasaError),
		})
	}

	// 稳定排序：同错误率保持扫描顺序，结果确定
	sort.SliceStable(dificiles, func(i, j int) bool {
		return dificiles[i].TasaError > dificiles[j].TasaError
	})
	if len(dificiles) > 5 {
		dificiles = dificiles[:5]
	}

	return &GlobalStatistics{
		TotalPreguntasActivas:    totalPreguntas,
		TotalSesionesCompletadas: int64(len(completadas)),
		PromedioAciertos:         round2(promedio),
		CategoriasDificiles:      dificiles,
	}, nil
}

// Session 单个会话的明细统计。题干按答题逐条回查，题目行缺失时置空而不报错。
func (s *StatisticsService) Session(sessionID uint) (*SessionStatistics, error) {
	session, err := s.Sessions.FindByID(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	answers, err := s.Answers.ListAllBySession(sessionID)
	if err != nil {
		return nil, err
	}

	respondidas := len(answers)
	correctas := 0
	for _, a := range answers {
		if a.EsCorrecta {
			correctas++
		}
	}

	porcentaje := 0.0
	if respondidas > 0 {
		porcentaje = float64(correctas) / float64(respondidas) * 100
	}

	// 0 视为未计时，与空值同样排除在均值之外
	var tiempos []int
	for _, a := range answers {
		if a.TiempoRespuestaSegundos != nil && *a.TiempoRespuestaSegundos != 0 {
			tiempos = append(tiempos, *a.TiempoRespuestaSegundos)
		}
	}
	var tiempoPromedio *float64
	if len(tiempos) > 0 {
		suma := 0
		for _, t := range tiempos {
			suma += t
		}
		promedio := float64(suma) / float64(len(tiempos))
		if promedio != 0 {
			redondeado := round2(promedio)
			tiempoPromedio = &redondeado
		}
	}

	resumen := make([]AnswerSummary, 0, len(answers))
	for _, a := range answers {
		var pregunta *string
		if q, err := s.Questions.FindByID(a.QuestionID); err == nil {
			pregunta = &q.Pregunta
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		resumen = append(resumen, AnswerSummary{
			QuestionID:            a.QuestionID,
			Pregunta:              pregunta,
			RespuestaSeleccionada: a.RespuestaSeleccionada,
			EsCorrecta:            a.EsCorrecta,
			TiempoSegundos:        a.TiempoRespuestaSegundos,
		})
	}

	return &SessionStatistics{
		SessionID:              sessionID,
		Usuario:                session.UsuarioNombre,
		PuntuacionFinal:        session.PuntuacionTotal,
		PorcentajeAciertos:     round2(porcentaje),
		PreguntasRespondidas:   respondidas,
		PreguntasCorrectas:     correctas,
		TiempoPromedioSegundos: tiempoPromedio,
		TiempoTotalSegundos:    session.TiempoTotalSegundos,
		ResumenRespuestas:      resumen,
	}, nil
}

// DifficultQuestions 错误率最高的启用题目，最多 limit 条；零答题的题目不参与。
func (s *StatisticsService) DifficultQuestions(limit int) ([]DifficultQuestion, error) {
	preguntas, err := s.Questions.ListActive()
	if err != nil {
		return nil, err
	}

	answers, err := s.Answers.ListByQuestionIDs(questionIDs(preguntas))
	if err != nil {
		return nil, err
	}
	byQuestion := make(map[uint][]model.Answer, len(preguntas))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	dificiles := make([]DifficultQuestion, 0, len(preguntas))
	for _, q := range preguntas {
		qa := byQuestion[q.ID]
		total := len(qa)
		if total == 0 {
			continue
		}
		incorrectas := 0
		for _, a := range qa {
			if !a.EsCorrecta {
				incorrectas++
			}
		}
		tasaError := float64(incorrectas) / float64(total) * 100
		dificiles = append(dificiles, DifficultQuestion{
			QuestionID:      q.ID,
			Pregunta:        q.Pregunta,
			Categoria:       q.Categoria,
			Dificultad:      q.Dificultad,
			VecesRespondida: total,
			VecesIncorrecta: incorrectas,
			TasaError:       round2(tasaError),
		})
	}

	sort.SliceStable(dificiles, func(i, j int) bool {
		return dificiles[i].TasaError > dificiles[j].TasaError
	})
	if len(dificiles) > limit {
		dificiles = dificiles[:limit]
	}
	return dificiles, nil
}

// CategoryRanking 各分类的作答表现。没有答题的分类仍保留，promedio 记 0。
func (s *StatisticsService) CategoryRanking() ([]CategoryPerformance, error) {
	categorias, err := s.Questions.ActiveCategories()
	if err != nil {
		return nil, err
	}

	rendimiento := make([]CategoryPerformance, 0, len(categorias))
	for _, categoria := range categorias {
		preguntas, err := s.Questions.ListActiveByCategoria(categoria)
		if err != nil {
			return nil, err
		}
		if len(preguntas) == 0 {
			continue
		}
		answers, err := s.Answers.ListByQuestionIDs(questionIDs(preguntas))
		if err != nil {
			return nil, err
		}
		total := len(answers)
		correctas := 0
		for _, a := range answers {
			if a.EsCorrecta {
				correctas++
			}
		}
		promedio := 0.0
		if total > 0 {
			promedio = float64(correctas) / float64(total) * 100
		}
		rendimiento = append(rendimiento, CategoryPerformance{
			Categoria:        categoria,
			NumPreguntas:     len(preguntas),
			NumRespuestas:    total,
			Aciertos:         correctas,
			PromedioAciertos: round2(promedio),
		})
	}

	sort.SliceStable(rendimiento, func(i, j int) bool {
		return rendimiento[i].PromedioAciertos > rendimiento[j].PromedioAciertos
	})
	return rendimiento, nil
}

func questionIDs(qs []model.Question) []uint {
	ids := make([]uint, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
