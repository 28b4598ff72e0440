package main

import (
	"flag"
	"log"

	"github.com/makuralymi/Questionnaire-survey/internal/api"
	"github.com/makuralymi/Questionnaire-survey/internal/api/handler"
	"github.com/makuralymi/Questionnaire-survey/internal/config"
	"github.com/makuralymi/Questionnaire-survey/internal/store"
	"github.com/makuralymi/Questionnaire-survey/internal/survey"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	st, err := store.Open(cfg.Store, cfg.DataFile)
	if err != nil {
		log.Fatalf("❌ Failed to open record store: %v", err)
	}

	schema := cfg.ActiveSchema()
	cache := survey.NewStatsCache()

	// Eager warm-up so the first dashboard request pays no recompute cost.
	if records, err := st.ReadAll(); err != nil {
		log.Printf("⚠️ Initial stats preload failed: %v", err)
	} else {
		cache.Set(survey.BuildStats(records, schema))
	}

	h := &handler.SurveyHandler{
		Store:             st,
		Schema:            schema,
		Cache:             cache,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	}

	// Two listeners, one process: public submission intake and the
	// authenticated stats dashboard share the same store and cache.
	go func() {
		if err := api.NewSurveyRouter(h).Start(cfg.SurveyAddr); err != nil {
			log.Fatalf("❌ Survey listener failed: %v", err)
		}
	}()

	if err := api.NewStatsRouter(h, cfg.Auth).Start(cfg.StatsAddr); err != nil {
		log.Fatalf("❌ Stats listener failed: %v", err)
	}
}
