// SPDX-License-Identifier: MIT
// File: csv.go
// Role: CSV encoding of node and edge tables.

package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	colKey    = "key"
	colSource = "source"
	colTarget = "target"
)

// coordColumn names coordinate column i.
func coordColumn(i int) string { return "x" + strconv.Itoa(i) }

// WriteNodesCSV writes t as "key,x0,x1,..." with a header row.
func WriteNodesCSV(w io.Writer, t NodeTable) error {
	if t.Coords != nil && len(t.Coords) != len(t.Keys) {
		return fmt.Errorf("WriteNodesCSV: %w", ErrColumnLength)
	}
	d := t.Dims()
	cw := csv.NewWriter(w)
	rec := make([]string, 1+d)
	rec[0] = colKey
	for i := 0; i < d; i++ {
		rec[1+i] = coordColumn(i)
	}
	if err := cw.Write(rec); err != nil {
		return fmt.Errorf("WriteNodesCSV: %w", err)
	}
	for r, k := range t.Keys {
		rec[0] = strconv.FormatInt(k, 10)
		if d > 0 {
			if len(t.Coords[r]) != d {
				return fmt.Errorf("WriteNodesCSV: row %d: %w", r, ErrColumnLength)
			}
			for i, v := range t.Coords[r] {
				rec[1+i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteNodesCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteEdgesCSV writes t as "source,target" with a header row.
func WriteEdgesCSV(w io.Writer, t EdgeTable) error {
	if len(t.Source) != len(t.Target) {
		return fmt.Errorf("WriteEdgesCSV: %w", ErrColumnLength)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colSource, colTarget}); err != nil {
		return fmt.Errorf("WriteEdgesCSV: %w", err)
	}
	for i := range t.Source {
		err := cw.Write([]string{strconv.FormatInt(t.Source[i], 10), strconv.FormatInt(t.Target[i], 10)})
		if err != nil {
			return fmt.Errorf("WriteEdgesCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadNodesCSV parses the WriteNodesCSV layout. The coordinate width comes
// from the header.
//
// Errors: ErrBadHeader, ErrBadRecord, or the csv reader's error.
func ReadNodesCSV(r io.Reader) (NodeTable, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	head, err := cr.Read()
	if err != nil {
		return NodeTable{}, fmt.Errorf("ReadNodesCSV: header: %w: %w", ErrBadHeader, err)
	}
	if head[0] != colKey {
		return NodeTable{}, fmt.Errorf("ReadNodesCSV: first column %q: %w", head[0], ErrBadHeader)
	}
	d := len(head) - 1
	for i := 0; i < d; i++ {
		if head[1+i] != coordColumn(i) {
			return NodeTable{}, fmt.Errorf("ReadNodesCSV: column %q: %w", head[1+i], ErrBadHeader)
		}
	}

	var t NodeTable
	if d > 0 {
		t.Coords = [][]float64{}
	}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return NodeTable{}, fmt.Errorf("ReadNodesCSV: %w", err)
		}
		k, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return NodeTable{}, fmt.Errorf("ReadNodesCSV: line %d: key: %w: %w", line, ErrBadRecord, err)
		}
		t.Keys = append(t.Keys, k)
		if d == 0 {
			continue
		}
		row := make([]float64, d)
		for i := range row {
			if row[i], err = strconv.ParseFloat(rec[1+i], 64); err != nil {
				return NodeTable{}, fmt.Errorf("ReadNodesCSV: line %d: %s: %w: %w",
					line, coordColumn(i), ErrBadRecord, err)
			}
		}
		t.Coords = append(t.Coords, row)
	}
}

// ReadEdgesCSV parses the WriteEdgesCSV layout.
//
// Errors: ErrBadHeader, ErrBadRecord, or the csv reader's error.
func ReadEdgesCSV(r io.Reader) (EdgeTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true
	head, err := cr.Read()
	if err != nil {
		return EdgeTable{}, fmt.Errorf("ReadEdgesCSV: header: %w: %w", ErrBadHeader, err)
	}
	if head[0] != colSource || head[1] != colTarget {
		return EdgeTable{}, fmt.Errorf("ReadEdgesCSV: header %v: %w", head, ErrBadHeader)
	}

	var t EdgeTable
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return EdgeTable{}, fmt.Errorf("ReadEdgesCSV: %w", err)
		}
		u, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return EdgeTable{}, fmt.Errorf("ReadEdgesCSV: line %d: source: %w: %w", line, ErrBadRecord, err)
		}
		v, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return EdgeTable{}, fmt.Errorf("ReadEdgesCSV: line %d: target: %w: %w", line, ErrBadRecord, err)
		}
		t.Source = append(t.Source, u)
		t.Target = append(t.Target, v)
	}
}
