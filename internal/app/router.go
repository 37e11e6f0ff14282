package app

import (
	"quiz_api_backend/docs"
	"quiz_api_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		questions := api.Group("/questions")
		{
			questions.POST("", c.question.Create)
			questions.POST("/bulk", c.question.BulkCreate)
			questions.GET("/random", c.question.Random)
			questions.GET("", c.question.List)
			questions.GET("/:id", c.question.Get)
			questions.PUT("/:id", c.question.Update)
			questions.DELETE("/:id", c.question.Delete)
		}

		sessions := api.Group("/quiz-sessions")
		{
			sessions.POST("", c.session.Create)
			sessions.GET("", c.session.List)
			sessions.GET("/:id", c.session.Get)
			sessions.PUT("/:id/complete", c.session.Complete)
			sessions.DELETE("/:id", c.session.Delete)
		}

		answers := api.Group("/answers")
		{
			answers.POST("", c.answer.Create)
			answers.GET("/session/:sessionID", c.answer.ListBySession)
			answers.GET("/:id", c.answer.Get)
			answers.PUT("/:id", c.answer.Update)
		}

		statistics := api.Group("/statistics")
		{
			statistics.GET("/global", c.statistics.Global)
			statistics.GET("/session/:id", c.statistics.Session)
			statistics.GET("/questions/difficult", c.statistics.DifficultQuestions)
			statistics.GET("/categories", c.statistics.Categories)
		}
	}
}
