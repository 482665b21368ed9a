package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"diffsim/internal/diffusion"
)

type ExportData struct {
	RunMetadata
	X       []float64 `json:"x"`
	Initial []float64 `json:"initial"`
	Final   []float64 `json:"final"`
}

// ExportJSON writes a run's metadata and profiles as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, x diffusion.Grid, initial, final diffusion.Field) error {
	data := ExportData{
		RunMetadata: *meta,
		X:           x,
		Initial:     initial,
		Final:       final,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a run's profiles in the same x,c0,c layout the store
// persists.
func ExportCSV(w io.Writer, x diffusion.Grid, initial, final diffusion.Field) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"x", "c0", "c"}); err != nil {
		return err
	}
	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'f', 6, 64),
			strconv.FormatFloat(initial[i], 'f', 6, 64),
			strconv.FormatFloat(final[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
