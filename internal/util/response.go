package util

import (
	"errors"
	"net/http"

	"quiz_api_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// RespondError 将服务层错误种类映射为 HTTP 状态码。
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrAnswerNotFound),
		errors.Is(err, ErrNoActiveQuestions):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateAnswer):
		Error(c, http.StatusConflict, err.Error())
	case IsValidationError(err):
		Error(c, http.StatusBadRequest, err.Error())
	default:
		LogInternalError(c, err)
	}
}
