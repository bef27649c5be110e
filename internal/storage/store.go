// Package storage persists run summaries for the CLI: one directory per
// run holding metadata and a sampled position/energy time series. It saves
// diagnostics output, not resumable simulation state.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbital/internal/celestial"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Catalog     string    `json:"catalog"`
	Timestamp   time.Time `json:"timestamp"`
	Dt          float64   `json:"dt"`
	Duration    float64   `json:"duration"`
	Steps       int       `json:"steps"`
	Bodies      []string  `json:"bodies"`
	EnergyError float64   `json:"energy_error"`
	WallTime    float64   `json:"wall_time_seconds"`
}

// Sample is one sampled instant of a run: positions in AU plus the energy
// diagnostic.
type Sample struct {
	TimeDays  float64
	Positions []celestial.Vec3
	EnergyErr float64
}

// Save writes metadata.json and samples.csv under a fresh run directory
// and returns the run ID. The CSV has one row per sample: time in days,
// then x/y/z in AU per body in catalog order, then the relative energy
// error.
func (s *Store) Save(meta RunMetadata, samples []Sample) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	// Timestamps only resolve to the second, so back-to-back runs of the
	// same catalog would collide; suffix until the directory is fresh.
	base := fmt.Sprintf("%s_%d", meta.Catalog, time.Now().Unix())
	runID := base
	var runDir string
	for i := 1; ; i++ {
		runDir = filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time_days"}
	for _, name := range meta.Bodies {
		header = append(header, name+"_x_au", name+"_y_au", name+"_z_au")
	}
	header = append(header, "energy_error")
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, sample := range samples {
		row := []string{strconv.FormatFloat(sample.TimeDays, 'f', 4, 64)}
		for _, p := range sample.Positions {
			row = append(row,
				strconv.FormatFloat(p.X, 'g', 10, 64),
				strconv.FormatFloat(p.Y, 'g', 10, 64),
				strconv.FormatFloat(p.Z, 'g', 10, 64))
		}
		row = append(row, strconv.FormatFloat(sample.EnergyErr, 'g', 6, 64))
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSamples reads a run's sampled series back, tolerating short or
// malformed rows the way the writer never produces but hand-edited files
// might.
func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
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
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		nBodies := (len(record) - 2) / 3
		sample := Sample{TimeDays: t, Positions: make([]celestial.Vec3, 0, nBodies)}
		for i := 0; i < nBodies; i++ {
			x, errX := strconv.ParseFloat(record[1+i*3], 64)
			y, errY := strconv.ParseFloat(record[2+i*3], 64)
			z, errZ := strconv.ParseFloat(record[3+i*3], 64)
			if errX != nil || errY != nil || errZ != nil {
				continue
			}
			sample.Positions = append(sample.Positions, celestial.Vec3{X: x, Y: y, Z: z})
		}
		if e, err := strconv.ParseFloat(record[len(record)-1], 64); err == nil {
			sample.EnergyErr = e
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
