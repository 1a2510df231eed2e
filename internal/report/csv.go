package report

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// WriteCSV writes the value matrix with prices down the first column and
// volatilities across the header row.
func WriteCSV(w io.Writer, s *Surface, places int32) error {
	if s.Empty() {
		return errors.New("surface has no cells")
	}

	writer := csv.NewWriter(w)

	header := make([]string, 0, len(s.Volatilities)+1)
	header = append(header, `price\vol`)
	for _, vol := range s.Volatilities {
		header = append(header, formatFloat(vol, places))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, price := range s.Prices {
		record := make([]string, 0, len(s.Volatilities)+1)
		record = append(record, formatFloat(price, places))
		for _, v := range s.Values[i] {
			record = append(record, formatFloat(v, places))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the surface to path, creating parent directories.
func SaveCSV(path string, s *Surface, places int32) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, s, places)
}

// CSVSink rewrites a CSV file with every surface it receives.
type CSVSink struct {
	Path   string
	Places int32
}

// WriteSurface implements the service sink contract.
func (c CSVSink) WriteSurface(ctx context.Context, s *Surface) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return SaveCSV(c.Path, s, c.Places)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
