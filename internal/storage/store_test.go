package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/formula"
	"github.com/san-kum/sonarlab/internal/sweep"
)

func runSweep(t *testing.T, req sweep.Request) *sweep.Result {
	t.Helper()
	res, err := sweep.NewRunner(catalog.Default(), 2).Run(context.Background(), req)
	require.NoError(t, err)
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.April, 26, 15, 10, 0, 0, time.UTC))
	st := NewWithClock(t.TempDir(), clock)
	require.NoError(t, st.Init())

	req := sweep.Request{
		Formula: "SpeedOfSoundSeaWaterMedwin",
		Param:   "depthM",
		From:    0,
		To:      2000,
		Steps:   5,
		Fixed:   map[string]float64{"temperatureC": 4},
	}
	res := runSweep(t, req)

	runID, err := st.Save(req, res)
	require.NoError(t, err)
	assert.Equal(t, "SpeedOfSoundSeaWaterMedwin_1714144200000", runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "SpeedOfSoundSeaWaterMedwin", meta.Formula)
	assert.Equal(t, "depthM", meta.Param)
	assert.Equal(t, 5, meta.Steps)
	assert.Equal(t, 2, meta.Diagnostics)
	assert.True(t, meta.Timestamp.Equal(clock.Now()))
	require.NotNil(t, meta.Max)
	assert.Equal(t, 2000.0, meta.Max.X)

	loaded, err := st.LoadResult(runID)
	require.NoError(t, err)
	require.Len(t, loaded.Points, 5)
	for i := range res.Points {
		assert.Equal(t, res.Points[i].X, loaded.Points[i].X)
		assert.Equal(t, res.Points[i].Outputs, loaded.Points[i].Outputs)
		assert.Len(t, loaded.Points[i].Diagnostics, len(res.Points[i].Diagnostics))
	}
	assert.Equal(t, formula.OutOfDeclaredRange, loaded.Points[4].Diagnostics[0].Kind)
	assert.Equal(t, "depthM", loaded.Points[4].Diagnostics[0].Param)
}

func TestStoreListNewestFirst(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.April, 26, 15, 10, 0, 0, time.UTC))
	st := NewWithClock(t.TempDir(), clock)
	require.NoError(t, st.Init())

	req := sweep.Request{Formula: "Wavelength", Param: "frequencyHz", From: 100, To: 1000, Steps: 3}
	res := runSweep(t, req)

	first, err := st.Save(req, res)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := st.Save(req, res)
	require.NoError(t, err)

	// stray files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(st.Dir(), "notes.txt"), []byte("x"), 0644))

	runs, err := st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)
}

func TestStoreSaveSameMillisecond(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1700000000, 0))
	st := NewWithClock(t.TempDir(), clock)
	require.NoError(t, st.Init())

	reqA := sweep.Request{Formula: "SpeedOfSoundDryAir", Param: "temperatureC", From: 0, To: 20, Steps: 3}
	reqB := sweep.Request{Formula: "SpeedOfSoundDryAir", Param: "temperatureC", From: -10, To: 30, Steps: 5}

	first, err := st.Save(reqA, runSweep(t, reqA))
	require.NoError(t, err)
	second, err := st.Save(reqB, runSweep(t, reqB))
	require.NoError(t, err)
	assert.Equal(t, "SpeedOfSoundDryAir_1700000000000", first)
	assert.Equal(t, "SpeedOfSoundDryAir_1700000000000_1", second)

	runs, err := st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, 5, runs[0].Steps)
	assert.Equal(t, first, runs[1].ID)
	assert.Equal(t, 3, runs[1].Steps)
}

func TestWriteJSONReportsFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	assert.Error(t, writeJSON("/dev/full", map[string]int{"a": 1}))
	assert.Error(t, writeJSON(filepath.Join(t.TempDir(), "missing", "m.json"), 1))
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load("nope")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestExportJSON(t *testing.T) {
	st := NewWithClock(t.TempDir(), clockwork.NewFakeClock())
	require.NoError(t, st.Init())

	req := sweep.Request{Formula: "FuelStabilizer", Param: "fuelLiters", From: 0, To: 40, Steps: 3}
	runID, err := st.Save(req, runSweep(t, req))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, st.ExportJSON(&buf, runID))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, runID, data.Run.ID)
	require.Len(t, data.Points, 3)
	assert.Equal(t, []any{25.0, 500.0}, data.Points[1].Values)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, st.ExportJSONFile(path, runID))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportJSONNonFinite(t *testing.T) {
	st := NewWithClock(t.TempDir(), clockwork.NewFakeClock())
	require.NoError(t, st.Init())

	req := sweep.Request{Formula: "PropagationLossSpherical", Param: "rangeM", From: 0, To: 10, Steps: 3}
	runID, err := st.Save(req, runSweep(t, req))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, st.ExportJSON(&buf, runID))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, []any{"-Inf"}, data.Points[0].Values)
	require.NotNil(t, data.Run.Min)
	assert.Equal(t, 5.0, data.Run.Min.X)
}
