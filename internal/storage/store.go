// Package storage persists sweep runs on disk. Each run is a directory
// holding metadata.json and values.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/san-kum/sonarlab/internal/formula"
	"github.com/san-kum/sonarlab/internal/sweep"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
	clock   clockwork.Clock
}

func New(baseDir string) *Store {
	return NewWithClock(baseDir, clockwork.NewRealClock())
}

// NewWithClock lets tests pin run IDs and timestamps.
func NewWithClock(baseDir string, clock clockwork.Clock) *Store {
	return &Store{baseDir: baseDir, clock: clock}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the base directory.
func (s *Store) Dir() string {
	return s.baseDir
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Formula     string             `json:"formula"`
	Param       string             `json:"param"`
	ParamUnit   string             `json:"param_unit"`
	Outputs     []formula.Output   `json:"outputs"`
	Args        []float64          `json:"args"`
	Fixed       map[string]float64 `json:"fixed,omitempty"`
	From        float64            `json:"from"`
	To          float64            `json:"to"`
	Steps       int                `json:"steps"`
	Timestamp   time.Time          `json:"timestamp"`
	Diagnostics int                `json:"diagnostics"`
	Min         *sweep.Extremum    `json:"min,omitempty"`
	Max         *sweep.Extremum    `json:"max,omitempty"`
}

// maxRunSuffix bounds the retries when run IDs collide within a millisecond.
const maxRunSuffix = 1000

// Save writes a new run directory. Runs saved in the same millisecond get a
// numeric suffix, so an existing run is never overwritten.
func (s *Store) Save(req sweep.Request, res *sweep.Result) (string, error) {
	now := s.clock.Now().UTC()
	runID, runDir, err := s.createRunDir(fmt.Sprintf("%s_%d", res.Formula, now.UnixMilli()))
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Formula:     res.Formula,
		Param:       res.Param,
		ParamUnit:   res.ParamUnit,
		Outputs:     res.Outputs,
		Args:        res.Args,
		Fixed:       req.Fixed,
		From:        req.From,
		To:          req.To,
		Steps:       len(res.Points),
		Timestamp:   now,
		Diagnostics: res.DiagnosticCount(),
	}
	if e, ok := res.Min(); ok {
		meta.Min = &e
	}
	if e, ok := res.Max(); ok {
		meta.Max = &e
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeValues(filepath.Join(runDir, "values.csv"), res); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) createRunDir(base string) (string, string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", "", err
	}
	for n := 0; n < maxRunSuffix; n++ {
		runID := base
		if n > 0 {
			runID = fmt.Sprintf("%s_%d", base, n)
		}
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
	}
	return "", "", fmt.Errorf("storage: no free run id for %s", base)
}

// closeFile closes f and reports its error unless err is already set.
func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeValues(path string, res *sweep.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	w := csv.NewWriter(f)

	header := []string{res.Param}
	for _, o := range res.Outputs {
		header = append(header, o.Name)
	}
	header = append(header, "diagnostics")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range res.Points {
		row := []string{strconv.FormatFloat(p.X, 'g', -1, 64)}
		for _, v := range p.Outputs {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		msgs := make([]string, len(p.Diagnostics))
		for i, d := range p.Diagnostics {
			msgs[i] = d.Kind.String() + ":" + d.Param
		}
		row = append(row, strings.Join(msgs, ";"))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].Timestamp.After(runs[j].Timestamp)
		}
		// same millisecond: suffixed IDs are newer
		if len(runs[i].ID) != len(runs[j].ID) {
			return len(runs[i].ID) > len(runs[j].ID)
		}
		return runs[i].ID > runs[j].ID
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadResult rebuilds the sweep result of a stored run. Diagnostics are
// restored by kind and parameter only.
func (s *Store) LoadResult(runID string) (*sweep.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "values.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := &sweep.Result{
		Formula:   meta.Formula,
		Param:     meta.Param,
		ParamUnit: meta.ParamUnit,
		Outputs:   meta.Outputs,
		Args:      meta.Args,
		Points:    make([]sweep.Point, 0, len(records)),
	}
	n := len(meta.Outputs)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < n+1 {
			continue
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s line %d: %w", runID, i+1, err)
		}
		p := sweep.Point{X: x, Outputs: make([]float64, n)}
		for k := 0; k < n; k++ {
			p.Outputs[k], err = strconv.ParseFloat(record[k+1], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s line %d: %w", runID, i+1, err)
			}
		}
		if len(record) > n+1 && record[n+1] != "" {
			p.Diagnostics = parseDiagnostics(meta.Formula, record[n+1])
		}
		res.Points = append(res.Points, p)
	}

	return res, nil
}

func parseDiagnostics(name, field string) []formula.Diagnostic {
	var diags []formula.Diagnostic
	for _, item := range strings.Split(field, ";") {
		kind, param, _ := strings.Cut(item, ":")
		d := formula.Diagnostic{Formula: name, Param: param, Message: item}
		if kind == formula.NoRuleMatched.String() {
			d.Kind = formula.NoRuleMatched
		}
		diags = append(diags, d)
	}
	return diags
}
