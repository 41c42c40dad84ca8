package absorption

import (
	"sync"

	"github.com/san-kum/sonarlab/internal/tables"
)

// Conditions the bundled sea-water table was generated at.
const (
	tableSalinityPpt = 35
	tableDepthM      = 0
	tablePH          = 8
)

var (
	tableTemperaturesC  = []float64{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30}
	tableFrequenciesKHz = []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500}

	seaWaterTable     *tables.Table2D
	seaWaterTableOnce sync.Once
)

// SeaWaterTable returns the molecular-relaxation absorption table [dB/km]
// indexed by temperature [°C] and frequency [kHz]. It is built on first use
// and shared afterwards.
func SeaWaterTable() *tables.Table2D {
	seaWaterTableOnce.Do(func() {
		values := make([][]float64, len(tableTemperaturesC))
		for i, t := range tableTemperaturesC {
			row := make([]float64, len(tableFrequenciesKHz))
			for j, f := range tableFrequenciesKHz {
				row[j] = SeaWaterFrancoisGarrison(f, t, tableSalinityPpt, tableDepthM, tablePH)
			}
			values[i] = row
		}
		seaWaterTable = tables.MustTable2D("AbsorptionSoundSeaWaterTabulated",
			"temperatureC", "frequencyKHz", tableTemperaturesC, tableFrequenciesKHz, values)
	})
	return seaWaterTable
}

// SeaWaterTabulated looks up the absorption [dB/km] at an exact bundled
// temperature [°C] and frequency [kHz]. Any other key fails with
// formula.ErrNoTableEntry.
func SeaWaterTabulated(temperatureC, frequencyKHz float64) (float64, error) {
	return SeaWaterTable().Lookup(temperatureC, frequencyKHz)
}
