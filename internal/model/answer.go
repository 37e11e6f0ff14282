package model

import "time"

// Answer 用户对某题的作答。同一会话内每题只允许一条记录（复合唯一索引兜底）。
// es_correcta 由服务端比对计算，客户端不可提交。
// swagger:model Answer
type Answer struct {
	ID                      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizSessionID           uint      `gorm:"not null;uniqueIndex:uniq_session_question" json:"quiz_session_id"`
	QuestionID              uint      `gorm:"not null;uniqueIndex:uniq_session_question;index" json:"question_id"`
	RespuestaSeleccionada   int       `gorm:"not null" json:"respuesta_seleccionada"`
	EsCorrecta              bool      `gorm:"default:false" json:"es_correcta"`
	TiempoRespuestaSegundos *int      `json:"tiempo_respuesta_segundos"`
	CreatedAt               time.Time `json:"created_at"`
}

func (Answer) TableName() string {
	return "answers"
}
