package analysis

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExportFormat is the only export format the core produces.
const ExportFormat = "json"

type exportEnvelope struct {
	FileName   string    `json:"fileName"`
	Analysis   any       `json:"analysis"`
	ExportedAt time.Time `json:"exportedAt"`
	Format     string    `json:"format"`
}

// Export wraps an analysis (base or enriched) in the export envelope and renders indented JSON.
func Export(fileName string, analysis any, now time.Time) ([]byte, error) {
	if analysis == nil {
		return nil, fmt.Errorf("no analysis data to export")
	}

	data, err := json.MarshalIndent(exportEnvelope{
		FileName:   fileName,
		Analysis:   analysis,
		ExportedAt: now,
		Format:     ExportFormat,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	return data, nil
}
