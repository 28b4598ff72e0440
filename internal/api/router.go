package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/makuralymi/Questionnaire-survey/docs"
	"github.com/makuralymi/Questionnaire-survey/internal/api/handler"
	"github.com/makuralymi/Questionnaire-survey/internal/config"
	"github.com/makuralymi/Questionnaire-survey/pkg/router"
)

// NewSurveyRouter builds the public submission listener.
func NewSurveyRouter(h *handler.SurveyHandler) *router.Router {
	r := router.New()
	r.POST("/api/surveys", h.Submit)
	return r
}

// NewStatsRouter builds the dashboard listener. Every route sits behind the
// basic-auth gate, the API docs included.
func NewStatsRouter(h *handler.SurveyHandler, auth config.Auth) *router.Router {
	r := router.New()
	r.Use(BasicAuth(auth))
	r.GET("/api/stats", h.Stats)
	r.GET("/api/download", h.Download)
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	)))
	return r
}
