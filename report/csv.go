package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"hybridbench/bench"
)

// Column CSV 첫 번째 열로 쓸 스윕 파라미터
type Column int

const (
	// BySize n,comparisons,elapsed_seconds
	BySize Column = iota
	// ByThreshold S,comparisons,elapsed_seconds
	ByThreshold
)

// WriteCSV 스윕 결과를 CSV로 기록한다.
func WriteCSV(w io.Writer, column Column, results []bench.Result) error {
	cw := csv.NewWriter(w)

	header := "n"
	if column == ByThreshold {
		header = "S"
	}
	if err := cw.Write([]string{header, "comparisons", "elapsed_seconds"}); err != nil {
		return err
	}

	for _, r := range results {
		param := r.Size
		if column == ByThreshold {
			param = r.Threshold
		}
		record := []string{
			strconv.Itoa(param),
			strconv.FormatInt(r.Comparisons, 10),
			strconv.FormatFloat(r.Seconds(), 'f', 6, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteOptimaCSV n,optimal_S,comparisons
func WriteOptimaCSV(w io.Writer, optima []bench.Optimum) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"n", "optimal_S", "comparisons"}); err != nil {
		return err
	}
	for _, o := range optima {
		record := []string{
			strconv.Itoa(o.Size),
			strconv.Itoa(o.Threshold),
			strconv.FormatInt(o.Comparisons, 10),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
