// Package seed 在启动时按需灌入样例数据：16 道题与 3 个已完成的示例会话。
package seed

import (
	"time"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type demoSession struct {
	usuario    string
	diasAtras  int
	preguntas  []int // 题目在样例列表中的下标
	respuestas []int
}

func ptr(s string) *string { return &s }

var sampleQuestions = []model.Question{
	// Tecnología
	{
		Pregunta:          "¿Qué es FastAPI?",
		Opciones:          []string{"Una base de datos", "Un framework web", "Un lenguaje de programación", "Un editor de código"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("FastAPI es un framework web moderno y rápido para construir APIs REST con Python"),
		Categoria:         "Tecnología",
		Dificultad:        "fácil",
	},
	{
		Pregunta:          "¿Cuál es la complejidad temporal de una búsqueda binaria?",
		Opciones:          []string{"O(n)", "O(n²)", "O(log n)", "O(n log n)"},
		RespuestaCorrecta: 2,
		Explicacion:       ptr("La búsqueda binaria tiene complejidad O(log n) porque divide el problema por la mitad en cada iteración"),
		Categoria:         "Tecnología",
		Dificultad:        "medio",
	},
	{
		Pregunta:          "¿Qué es SQLAlchemy?",
		Opciones:          []string{"Un gestor de paquetes", "Un ORM de Python", "Un servidor web", "Una base de datos"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("SQLAlchemy es un ORM (Object-Relational Mapping) para Python que facilita el trabajo con bases de datos"),
		Categoria:         "Tecnología",
		Dificultad:        "fácil",
	},
	{
		Pregunta:          "¿Cuál de los siguientes NO es un tipo de dato en Python?",
		Opciones:          []string{"list", "tuple", "array", "dict"},
		RespuestaCorrecta: 2,
		Explicacion:       ptr("array no es un tipo de dato nativo de Python, aunque existe en la librería array y numpy"),
		Categoria:         "Tecnología",
		Dificultad:        "medio",
	},
	{
		Pregunta:          "¿Qué significa CORS?",
		Opciones:          []string{"Cross-Origin Request System", "Cross-Origin Resource Sharing", "Cross-Object Request Support", "Coordinated Origin Resource System"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("CORS (Cross-Origin Resource Sharing) permite que recursos de un dominio accedan a recursos de otro dominio"),
		Categoria:         "Tecnología",
		Dificultad:        "difícil",
	},
	// Historia
	{
		Pregunta:          "¿En qué año cayó el Muro de Berlín?",
		Opciones:          []string{"1987", "1989", "1991", "1993"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("El Muro de Berlín cayó el 9 de noviembre de 1989, marcando el fin de la Guerra Fría"),
		Categoria:         "Historia",
		Dificultad:        "medio",
	},
	{
		Pregunta:          "¿Quién fue el primer presidente de los Estados Unidos?",
		Opciones:          []string{"Thomas Jefferson", "George Washington", "John Adams", "Benjamin Franklin"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("George Washington fue el primer presidente de los Estados Unidos (1789-1797)"),
		Categoria:         "Historia",
		Dificultad:        "fácil",
	},
	{
		Pregunta:          "¿En qué siglo ocurrió la Revolución Francesa?",
		Opciones:          []string{"Siglo XVII", "Siglo XVIII", "Siglo XIX", "Siglo XX"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("La Revolución Francesa ocurrió principalmente en el siglo XVIII (1789-1799)"),
		Categoria:         "Historia",
		Dificultad:        "medio",
	},
	{
		Pregunta:          "¿Cuál fue el imperio más grande de la historia?",
		Opciones:          []string{"Imperio Otomano", "Imperio Español", "Imperio Británico", "Imperio Romano"},
		RespuestaCorrecta: 2,
		Explicacion:       ptr("El Imperio Británico fue el más grande en términos de territorio y población que gobernaba"),
		Categoria:         "Historia",
		Dificultad:        "difícil",
	},
	{
		Pregunta:          "¿En qué año terminó la Segunda Guerra Mundial?",
		Opciones:          []string{"1943", "1944", "1945", "1946"},
		RespuestaCorrecta: 2,
		Explicacion:       ptr("La Segunda Guerra Mundial terminó en 1945, con la rendición de Japón el 2 de septiembre"),
		Categoria:         "Historia",
		Dificultad:        "fácil",
	},
	// Ciencia
	{
		Pregunta:          "¿Cuál es el elemento químico más abundante en el universo?",
		Opciones:          []string{"Oxígeno", "Helio", "Hidrógeno", "Carbono"},
		RespuestaCorrecta: 2,
		Explicacion:       ptr("El hidrógeno es el elemento más abundante en el universo, formando la mayoría de las estrellas"),
		Categoria:         "Ciencia",
		Dificultad:        "medio",
	},
	{
		Pregunta:          "¿A cuántos grados Celsius hierve el agua al nivel del mar?",
		Opciones:          []string{"90°C", "100°C", "110°C", "120°C"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("El agua hierve a 100°C al nivel del mar (a una presión de 1 atmósfera)"),
		Categoria:         "Ciencia",
		Dificultad:        "fácil",
	},
	{
		Pregunta:          "¿Cuál es la velocidad de la luz en el vacío?",
		Opciones:          []string{"200,000 km/s", "300,000 km/s", "400,000 km/s", "500,000 km/s"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("La velocidad de la luz es aproximadamente 300,000 km/s o 3×10⁸ m/s"),
		Categoria:         "Ciencia",
		Dificultad:        "medio",
	},
	{
		Pregunta:          "¿Cuántos cromosomas tiene un ser humano?",
		Opciones:          []string{"23", "46", "92", "184"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("Los seres humanos tenemos 46 cromosomas (23 pares), 23 de cada progenitor"),
		Categoria:         "Ciencia",
		Dificultad:        "medio",
	},
	// Geografía
	{
		Pregunta:          "¿Cuál es la capital de Francia?",
		Opciones:          []string{"Lyon", "Marsella", "París", "Toulouse"},
		RespuestaCorrecta: 2,
		Explicacion:       ptr("París es la capital y ciudad más grande de Francia"),
		Categoria:         "Geografía",
		Dificultad:        "fácil",
	},
	{
		Pregunta:          "¿Cuál es el río más largo del mundo?",
		Opciones:          []string{"Amazonas", "Nilo", "Yangtsé", "Misisipi"},
		RespuestaCorrecta: 1,
		Explicacion:       ptr("El río Nilo es el río más largo del mundo, con aproximadamente 6,650 km de longitud"),
		Categoria:         "Geografía",
		Dificultad:        "medio",
	},
}

var demoSessions = []demoSession{
	{usuario: "Juan Pérez", diasAtras: 3, preguntas: []int{0, 1, 2, 3, 4}, respuestas: []int{1, 2, 1, 2, 1}},
	{usuario: "María García", diasAtras: 2, preguntas: []int{5, 6, 7, 8, 9}, respuestas: []int{1, 1, 1, 2, 2}},
	{usuario: "Carlos López", diasAtras: 1, preguntas: []int{10, 11, 12, 13, 14}, respuestas: []int{2, 1, 1, 1, 2}},
}

// Run 灌入样例数据。库里已有题目时跳过，除非 force 先清空三张表。
func Run(db *gorm.DB, force bool) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 && !force {
		logger.Log.Info("Seed skipped, database already contains questions", zap.Int64("questions", count))
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if force {
			logger.Log.Info("Force seed enabled, wiping tables")
			if err := tx.Where("1 = 1").Delete(&model.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&model.QuizSession{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}

		questions := make([]model.Question, len(sampleQuestions))
		copy(questions, sampleQuestions)
		for i := range questions {
			questions[i].IsActive = true
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		for _, demo := range demoSessions {
			inicio := now.AddDate(0, 0, -demo.diasAtras)
			fin := inicio.Add(time.Hour)
			usuario := demo.usuario
			session := model.QuizSession{
				UsuarioNombre: &usuario,
				FechaInicio:   inicio,
				FechaFin:      &fin,
				Estado:        model.SessionCompleted,
			}
			if err := tx.Create(&session).Error; err != nil {
				return err
			}

			correctas := 0
			tiempoTotal := 0
			respondidas := 0
			for i, qIdx := range demo.preguntas {
				if qIdx < 0 || qIdx >= len(questions) {
					continue
				}
				q := questions[qIdx]
				seleccionada := demo.respuestas[i]
				esCorrecta := seleccionada == q.RespuestaCorrecta
				if esCorrecta {
					correctas++
				}
				tiempo := 10 + (qIdx%5)*3
				tiempoTotal += tiempo
				respondidas++

				answer := model.Answer{
					QuizSessionID:           session.ID,
					QuestionID:              q.ID,
					RespuestaSeleccionada:   seleccionada,
					EsCorrecta:              esCorrecta,
					TiempoRespuestaSegundos: &tiempo,
				}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
			}

			puntuacion := 0
			if respondidas > 0 {
				puntuacion = correctas * 100 / respondidas
			}
			session.PreguntasRespondidas = respondidas
			session.PreguntasCorrectas = correctas
			session.PuntuacionTotal = puntuacion
			session.TiempoTotalSegundos = &tiempoTotal
			if err := tx.Save(&session).Error; err != nil {
				return err
			}
		}

		logger.Log.Info("Seed data loaded",
			zap.Int("questions", len(questions)),
			zap.Int("sessions", len(demoSessions)),
		)
		return nil
	})
}
