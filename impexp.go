package yieldcurve

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and be easy to merge into
// other tools.

// ImportSeries imports a yield series from 'r' in the import/export format.
//
// The import format is a JSONL file, where each line is a JSON object
// representing one tenor.
//
// A tenor is a single json object whose property 'maturity' contains the
// short tenor name ("3M", "2Y", "10Y", "30Y"), and property 'history'
// contains a single json object whose properties are ISO dates and values
// are the yield in percent as a number.
func ImportSeries(r io.Reader) (*YieldSeries, error) {

	// the readable version of the format can be summarized by a few types.
	type jtenor struct {
		Maturity string             `json:"maturity"`
		History  map[string]float64 `json:"history"`
	}

	histories := make(map[Maturity]map[Date]float64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jt jtenor
		if err := json.Unmarshal(line, &jt); err != nil {
			return nil, fmt.Errorf("cannot parse line for series import format: %q: %w", string(line), err)
		}

		m, err := ParseMaturity(jt.Maturity)
		if err != nil {
			return nil, fmt.Errorf("cannot import series: %w", err)
		}
		history := make(map[Date]float64, len(jt.History))
		for day, value := range jt.History {
			on, err := ParseDate(day)
			if err != nil {
				return nil, fmt.Errorf("cannot import %s history: %w", m, err)
			}
			history[on] = value
		}
		histories[m] = history
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read series import format: %w", err)
	}

	if len(histories) != numMaturities {
		return nil, fmt.Errorf("incomplete series import: got %d tenors, want %d", len(histories), numMaturities)
	}

	// All tenors must quote exactly the same days.
	days := make([]Date, 0, len(histories[M3]))
	for on := range histories[M3] {
		days = append(days, on)
	}
	slices.SortFunc(days, func(a, b Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})

	obs := make([]Observation, len(days))
	for i, on := range days {
		for _, m := range Maturities {
			v, ok := histories[m][on]
			if !ok {
				return nil, fmt.Errorf("incomplete series import: no %s yield on %s", m, on)
			}
			obs[i][m] = v
		}
	}

	return newYieldSeries(days, obs)
}

// ExportSeries exports the yield series to 'w' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object representing
// one tenor, see [ImportSeries] for the line layout. Tenors are written in
// ascending time-to-maturity order, and history keys marshal in lexical
// order which for ISO dates is also chronological, so the output is stable.
func ExportSeries(w io.Writer, s *YieldSeries) error {

	type jtenor struct {
		Maturity string             `json:"maturity"`
		History  map[string]float64 `json:"history"`
	}

	for _, m := range Maturities {
		jt := jtenor{
			Maturity: m.String(),
			History:  make(map[string]float64, s.Len()),
		}
		for on, obs := range s.Values() {
			jt.History[on.String()] = obs[m]
		}

		data, err := json.Marshal(jt)
		if err != nil {
			return fmt.Errorf("cannot marshal %s history: %w", m, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write series format: %w", err)
		}
	}
	return nil
}
