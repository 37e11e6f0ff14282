package model

import "time"

// 会话状态
const (
	SessionInProgress = "en_progreso"
	SessionCompleted  = "completado"
	SessionAbandoned  = "abandonado"
)

// QuizSession 一次测验会话。puntuacion_total 为完成时计算的百分比得分（0-100）。
// swagger:model QuizSession
type QuizSession struct {
	ID                   uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioNombre        *string    `gorm:"size:255" json:"usuario_nombre"`
	FechaInicio          time.Time  `gorm:"not null" json:"fecha_inicio"`
	FechaFin             *time.Time `json:"fecha_fin"`
	PuntuacionTotal      int        `gorm:"default:0" json:"puntuacion_total"`
	PreguntasRespondidas int        `gorm:"default:0" json:"preguntas_respondidas"`
	PreguntasCorrectas   int        `gorm:"default:0" json:"preguntas_correctas"`
	Estado               string     `gorm:"size:20;default:en_progreso;index" json:"estado"`
	TiempoTotalSegundos  *int       `json:"tiempo_total_segundos"`
	CreatedAt            time.Time  `json:"created_at"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}
