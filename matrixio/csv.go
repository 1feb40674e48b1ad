package matrixio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadDense parses a square float matrix from CSV: one row per record, one
// value per field. Whitespace around values is tolerated.
//
// Stage 1 (Read): pull all records; the csv reader already rejects ragged
// rows. Stage 2 (Validate): non-empty, row count == column count.
// Stage 3 (Parse): every cell must be a float; failures wrap ErrBadValue
// with row/column context.
//
// Returns ErrEmptyInput, ErrNotSquare, or a wrapped ErrBadValue.
func ReadDense(r io.Reader) (*mat.Dense, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("matrixio: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(records)
	if len(records[0]) != n {
		return nil, fmt.Errorf("matrixio: %d rows × %d cols: %w", n, len(records[0]), ErrNotSquare)
	}

	data := make([]float64, 0, n*n)
	for i, row := range records {
		for j, field := range row {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				return nil, fmt.Errorf("matrixio: row %d, col %d: %q: %w", i, j, field, ErrBadValue)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(n, n, data), nil
}

// ReadDenseFile opens path and delegates to ReadDense.
func ReadDenseFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadDense(f)
}

// WriteDense emits m as CSV, one row per record, values in shortest
// round-trippable form. Returns ErrNilMatrix on nil input.
func WriteDense(w io.Writer, m mat.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	cw := csv.NewWriter(w)
	r, c := m.Dims()
	record := make([]string, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("matrixio: write csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteClusters emits one cluster per line, members tab-separated. With a
// nil labels slice members print as indices; otherwise each index is
// translated through labels, and an index outside the slice returns
// ErrLabelRange.
func WriteClusters(w io.Writer, clusters [][]int, labels []string) error {
	var sb strings.Builder
	for _, cluster := range clusters {
		sb.Reset()
		for i, member := range cluster {
			if i > 0 {
				sb.WriteByte('\t')
			}
			if labels == nil {
				sb.WriteString(strconv.Itoa(member))

				continue
			}
			if member < 0 || member >= len(labels) {
				return fmt.Errorf("matrixio: index %d with %d labels: %w", member, len(labels), ErrLabelRange)
			}
			sb.WriteString(labels[member])
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("matrixio: write clusters: %w", err)
		}
	}

	return nil
}
