package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"wine-quality-service/internal/core/domain"
)

// CSVReader reads delimited tables whose header names the columns. The
// label column is split out and every other column becomes a feature, in
// file order.
type CSVReader struct {
	delimiter rune
	label     string
}

func NewCSVReader(delimiter rune, label string) *CSVReader {
	return &CSVReader{delimiter: delimiter, label: label}
}

func (r *CSVReader) Read(ctx context.Context, path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return r.parse(ctx, f)
}

func (r *CSVReader) parse(ctx context.Context, in io.Reader) (*domain.Dataset, error) {
	cr := csv.NewReader(in)
	cr.Comma = r.delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", domain.ErrInvalidDataset, err)
	}

	labelIdx := -1
	columns := make([]string, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == r.label {
			labelIdx = i
			continue
		}
		columns = append(columns, name)
	}
	if labelIdx == -1 {
		return nil, fmt.Errorf("%w: label column %q not found", domain.ErrInvalidDataset, r.label)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no feature columns", domain.ErrInvalidDataset)
	}

	var (
		values []float64
		labels []float64
	)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
		}

		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", domain.ErrInvalidDataset, line, strings.TrimSpace(header[i]), err)
			}
			if i == labelIdx {
				labels = append(labels, v)
			} else {
				values = append(values, v)
			}
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no data rows", domain.ErrInvalidDataset)
	}

	log.WithFields(log.Fields{
		"rows":     len(labels),
		"features": len(columns),
	}).Debug("dataset parsed")

	return &domain.Dataset{
		Columns: columns,
		X:       mat.NewDense(len(labels), len(columns), values),
		Y:       labels,
	}, nil
}
