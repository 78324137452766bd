package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/avasil/metadyn/internal/sim"
)

type ExportData struct {
	Potential string             `json:"potential"`
	Sampler   string             `json:"sampler"`
	Seed      int64              `json:"seed"`
	Steps     int                `json:"steps"`
	Deposits  int                `json:"deposits"`
	Biased    bool               `json:"biased"`
	Positions []float64          `json:"positions"`
	Energies  []float64          `json:"energies"`
	Metrics   map[string]float64 `json:"metrics"`
}

func ExportJSON(path string, potential, smp string, seed int64, biased bool, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return exportJSON(file, potential, smp, seed, biased, result)
}

func ExportJSONStdout(potential, smp string, seed int64, biased bool, result *sim.Result) error {
	return exportJSON(os.Stdout, potential, smp, seed, biased, result)
}

func exportJSON(w io.Writer, potential, smp string, seed int64, biased bool, result *sim.Result) error {
	data := ExportData{
		Potential: potential,
		Sampler:   smp,
		Seed:      seed,
		Steps:     result.Steps,
		Deposits:  result.Deposits,
		Biased:    biased,
		Positions: result.Positions,
		Energies:  result.Energies,
		Metrics:   result.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
