package yieldcurve

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// this file contains functions to handle the CSV dataset format.
// It should remain human readable, single file, and stable across versions:
// header "Date,3M,2Y,10Y,30Y", ISO dates, one row per calendar day.

// csvHeader is the fixed column layout of the dataset file.
var csvHeader = []string{"Date", "3M", "2Y", "10Y", "30Y"}

// EncodeCSV writes the series to 'w' in the dataset format.
//
// Yields are written with the shortest decimal representation that parses
// back to the exact same float64, so an encode/decode round trip is lossless.
func EncodeCSV(w io.Writer, s *YieldSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write dataset header: %w", err)
	}

	row := make([]string, 1+numMaturities)
	for on, obs := range s.Values() {
		row[0] = on.String()
		for i, m := range Maturities {
			row[1+i] = strconv.FormatFloat(obs[m], 'f', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write dataset row for %s: %w", on, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// DecodeCSV reads a series from 'r' in the dataset format.
//
// The header is checked against the canonical layout, and the decoded
// series must satisfy the contiguity invariant (one row per calendar day,
// strictly increasing).
func DecodeCSV(r io.Reader) (*YieldSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1 + numMaturities

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset header: %w", err)
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected dataset header %q, want %q", header, csvHeader)
		}
	}

	var days []Date
	var obs []Observation
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read dataset row: %w", err)
		}

		on, err := ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("cannot parse dataset row: %w", err)
		}

		var o Observation
		for i, m := range Maturities {
			v, err := strconv.ParseFloat(row[1+i], 64)
			if err != nil {
				return nil, fmt.Errorf("cannot parse %s yield on %s: %w", m, on, err)
			}
			o[m] = v
		}

		days = append(days, on)
		obs = append(obs, o)
	}

	return newYieldSeries(days, obs)
}
