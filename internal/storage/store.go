package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avasil/metadyn/internal/sim"
)

// FileStore keeps each run in its own directory under baseDir:
// metadata.json, trajectory.csv and, for biased runs, profile.csv.
type FileStore struct {
	baseDir string
}

func New(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

func (s *FileStore) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Potential string             `json:"potential"`
	Sampler   string             `json:"sampler"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Steps     int                `json:"steps"`
	Deposits  int                `json:"deposits"`
	Biased    bool               `json:"biased"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *FileStore) Save(potential, smp string, seed int64, biased bool, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", potential, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Potential: potential,
		Sampler:   smp,
		Timestamp: time.Now(),
		Seed:      seed,
		Steps:     result.Steps,
		Deposits:  result.Deposits,
		Biased:    biased,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "trajectory.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "position", "energy"}); err != nil {
		return "", err
	}

	for i := range result.Positions {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(result.Positions[i], 'f', 6, 64),
			strconv.FormatFloat(result.Energies[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// SaveProfile writes the accumulated bias and the free energy estimate at
// every bin center alongside the trajectory.
func (s *FileStore) SaveProfile(runID string, centers, biasEnergy, freeEnergy []float64) error {
	csvPath := filepath.Join(s.baseDir, runID, "profile.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"center", "bias", "free_energy"}); err != nil {
		return err
	}

	for i := range centers {
		row := []string{
			strconv.FormatFloat(centers[i], 'f', 6, 64),
			strconv.FormatFloat(biasEnergy[i], 'f', 6, 64),
			strconv.FormatFloat(freeEnergy[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *FileStore) List() ([]RunMetadata, error) {
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

func (s *FileStore) Load(runID string) (*RunMetadata, error) {
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

func (s *FileStore) LoadTrajectory(runID string) (positions, energies []float64, err error) {
	records, err := s.readCSV(runID, "trajectory.csv")
	if err != nil {
		return nil, nil, err
	}

	positions = make([]float64, 0, len(records))
	energies = make([]float64, 0, len(records))

	for _, record := range records {
		if len(record) < 3 {
			continue
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		e, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		positions = append(positions, x)
		energies = append(energies, e)
	}

	return positions, energies, nil
}

func (s *FileStore) LoadProfile(runID string) (centers, biasEnergy, freeEnergy []float64, err error) {
	records, err := s.readCSV(runID, "profile.csv")
	if err != nil {
		return nil, nil, nil, err
	}

	centers = make([]float64, 0, len(records))
	biasEnergy = make([]float64, 0, len(records))
	freeEnergy = make([]float64, 0, len(records))

	for _, record := range records {
		if len(record) < 3 {
			continue
		}
		c, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		b, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		f, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		centers = append(centers, c)
		biasEnergy = append(biasEnergy, b)
		freeEnergy = append(freeEnergy, f)
	}

	return centers, biasEnergy, freeEnergy, nil
}

func (s *FileStore) readCSV(runID, name string) ([][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
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
		return [][]string{}, nil
	}
	return records[1:], nil
}
