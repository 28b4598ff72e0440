package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/makuralymi/Questionnaire-survey/internal/config"
	"github.com/makuralymi/Questionnaire-survey/internal/store"
	"github.com/makuralymi/Questionnaire-survey/internal/survey"
	"github.com/makuralymi/Questionnaire-survey/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	format := flag.String("format", "csv", "export format: csv or json")
	outDir := flag.String("out", "exports", "output directory")
	startDate := flag.String("start", "", "inclusive start date (yyyy-mm-dd)")
	endDate := flag.String("end", "", "inclusive end date (yyyy-mm-dd)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	st, err := store.Open(cfg.Store, cfg.DataFile)
	if err != nil {
		log.Fatalf("❌ Failed to open record store: %v", err)
	}

	var start, end time.Time
	if *startDate != "" {
		if start, err = utils.ParseDateBound(*startDate, false); err != nil {
			log.Fatalf("❌ Invalid -start value %q: %v", *startDate, err)
		}
	}
	if *endDate != "" {
		if end, err = utils.ParseDateBound(*endDate, true); err != nil {
			log.Fatalf("❌ Invalid -end value %q: %v", *endDate, err)
		}
	}

	records, err := st.ReadAll()
	if err != nil {
		log.Fatalf("❌ Failed to read record store: %v", err)
	}
	records = survey.FilterByDate(records, start, end)

	data, err := survey.Format(records, cfg.ActiveSchema(), *format)
	if err != nil {
		log.Fatalf("❌ Failed to format export: %v", err)
	}

	om := utils.NewOutputManager(*outDir)
	path, err := om.ExportFilePath(*format, time.Now())
	if err != nil {
		log.Fatalf("❌ Failed to prepare output directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("❌ Failed to write export file: %v", err)
	}

	fmt.Printf("✅ Exported %d records to %s\n", len(records), path)
}
