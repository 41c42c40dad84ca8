package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sonarlab/internal/formula"
)

type ExportData struct {
	Run    RunMetadata   `json:"run"`
	Points []ExportPoint `json:"points"`
}

// ExportPoint is a sweep point with non-finite outputs rendered as strings.
type ExportPoint struct {
	X           float64              `json:"x"`
	Values      []any                `json:"values"`
	Diagnostics []formula.Diagnostic `json:"diagnostics,omitempty"`
}

// ExportJSON writes a stored run with its points to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	res, err := s.LoadResult(runID)
	if err != nil {
		return err
	}

	points := make([]ExportPoint, len(res.Points))
	for i, p := range res.Points {
		points[i] = ExportPoint{X: p.X, Values: formula.JSONValues(p.Outputs), Diagnostics: p.Diagnostics}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Run: *meta, Points: points})
}

// ExportJSONFile writes the export to path.
func (s *Store) ExportJSONFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.ExportJSON(file, runID)
}
