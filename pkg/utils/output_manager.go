package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// OutputManager handles export file organization and path management for the
// offline export tool.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// ExportFilePath generates the full path for an export file, creating the
// output directory if it doesn't exist.
func (om *OutputManager) ExportFilePath(format string, at time.Time) (string, error) {
	if err := os.MkdirAll(om.BaseOutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return filepath.Join(om.BaseOutputDir, ExportFileName(format, at)), nil
}

// ExportFileName builds the dated download filename, e.g.
// survey-data-2025-01-31.csv.
func ExportFileName(format string, at time.Time) string {
	return fmt.Sprintf("survey-data-%s.%s", at.Format("2006-01-02"), NormalizeFormat(format))
}

// NormalizeFormat maps a requested export format to a known one; anything
// other than json falls back to csv.
func NormalizeFormat(format string) string {
	if format == "json" {
		return "json"
	}
	return "csv"
}

// ContentType returns the response content type for an export format.
func ContentType(format string) string {
	if NormalizeFormat(format) == "json" {
		return "application/json"
	}
	return "text/csv; charset=utf-8"
}
