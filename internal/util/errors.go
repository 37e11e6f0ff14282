package util

import (
	"errors"
	"fmt"
)

var (
	ErrQuestionNotFound  = errors.New("Pregunta no encontrada")
	ErrSessionNotFound   = errors.New("Sesión no encontrada")
	ErrAnswerNotFound    = errors.New("Respuesta no encontrada")
	ErrNoActiveQuestions = errors.New("No hay preguntas disponibles")
	ErrDuplicateAnswer   = errors.New("Ya existe una respuesta para esta pregunta en esta sesión")
)

// ValidationError 字段取值不合法（范围越界或词表之外），消息中带可接受的取值。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
