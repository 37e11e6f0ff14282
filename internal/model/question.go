package model

import "time"

// Question 测验题目。opciones 以 JSON 数组存储，3-5 个选项，respuesta_correcta 为 0 基索引。
// swagger:model Question
type Question struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Pregunta          string    `gorm:"type:text;not null" json:"pregunta"`
	Opciones          []string  `gorm:"serializer:json;type:json;not null" json:"opciones"`
	RespuestaCorrecta int       `gorm:"not null" json:"respuesta_correcta"`
	Explicacion       *string   `gorm:"type:text" json:"explicacion"`
	Categoria         string    `gorm:"size:50;not null;index" json:"categoria"`
	Dificultad        string    `gorm:"size:20;not null" json:"dificultad"`
	CreatedAt         time.Time `json:"created_at"`
	IsActive          bool      `gorm:"default:true;index" json:"is_active"`
}

func (Question) TableName() string {
	return "questions"
}
