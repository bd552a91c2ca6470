package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Identity columns every input file must carry, in addition to the
// requested metric columns.
const (
	colPosition = "Pos"
	colPlayer   = "Player"
	colSquad    = "Squad"
	colAge      = "Age"
	colMinutes  = "Min"
)

// FromCSV decodes one season's stats file into a Table holding the identity
// fields plus exactly the requested metric columns. A requested column that
// is not in the header is a SchemaError; a cell that cannot be coerced to a
// number is a ParseError. Empty and NA cells become Missing.
func FromCSV(r io.Reader, metrics []string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{colPosition, colPlayer, colSquad, colAge, colMinutes} {
		if _, ok := index[name]; !ok {
			return nil, &SchemaError{Column: name}
		}
	}
	for _, name := range metrics {
		if _, ok := index[name]; !ok {
			return nil, &SchemaError{Column: name}
		}
	}

	t := &Table{Metrics: append([]string(nil), metrics...)}
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row %d: %w", row+1, err)
		}
		row++

		age, err := parseAge(rec[index[colAge]])
		if err != nil {
			return nil, &ParseError{Column: colAge, Row: row, Value: rec[index[colAge]]}
		}
		minutes := parseNumber(rec[index[colMinutes]])
		if !minutes.Valid && !isMissing(rec[index[colMinutes]]) {
			return nil, &ParseError{Column: colMinutes, Row: row, Value: rec[index[colMinutes]]}
		}

		p := Player{
			Name:     strings.TrimSpace(rec[index[colPlayer]]),
			Squad:    strings.TrimSpace(rec[index[colSquad]]),
			Position: strings.TrimSpace(rec[index[colPosition]]),
			Age:      age,
			Minutes:  minutes.Value,
			Values:   make(map[string]Cell, len(metrics)),
		}
		for _, name := range metrics {
			raw := rec[index[name]]
			cell := parseNumber(raw)
			if !cell.Valid && !isMissing(raw) {
				return nil, &ParseError{Column: name, Row: row, Value: raw}
			}
			p.Values[name] = cell
		}
		t.Players = append(t.Players, p)
	}
	return t, nil
}

// parseNumber coerces a CSV cell to a numeric Cell. Thousands separators
// are stripped; empty, NA-style and unparseable cells come back as Missing
// (the caller decides whether unparseable is fatal).
func parseNumber(s string) Cell {
	s = strings.TrimSpace(s)
	if isMissing(s) {
		return Missing
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing
	}
	return Num(v)
}

func isMissing(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "NA", "N/A", "na", "-":
		return true
	}
	return false
}

// parseAge handles both plain years ("28") and the year-days form some
// exports use ("28-034").
func parseAge(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '-'); i > 0 {
		s = s[:i]
	}
	return strconv.ParseFloat(s, 64)
}
