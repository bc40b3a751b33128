// Package report 벤치마크 결과 레코드를 마크다운/JSON/CSV로 출력한다.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"hybridbench/bench"
)

// SaveFile path에 버퍼링된 writer로 기록한다.
func SaveFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	if err := write(writer); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}
	return file.Close()
}

// WriteJSON 들여쓰기된 JSON
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteMarkdown 결과 레코드 표. 실험별로 섹션을 나눈다 (입력 순서 유지).
func WriteMarkdown(w io.Writer, title string, results []bench.Result) error {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("# %s\n\n", title))

	var experiments []string
	byExperiment := make(map[string][]bench.Result)
	for _, r := range results {
		if _, ok := byExperiment[r.Experiment]; !ok {
			experiments = append(experiments, r.Experiment)
		}
		byExperiment[r.Experiment] = append(byExperiment[r.Experiment], r)
	}

	for _, exp := range experiments {
		builder.WriteString(fmt.Sprintf("## %s\n\n", exp))
		builder.WriteString("| 알고리즘 | 병합 방식 | n | S | 비교 횟수 | 실행시간 | 할당량 |\n")
		builder.WriteString("|----------|-----------|---|---|-----------|----------|--------|\n")
		for _, r := range byExperiment[exp] {
			builder.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %s | %v | %s |\n",
				r.Algorithm, r.Strategy, humanize.Comma(int64(r.Size)), r.Threshold,
				humanize.Comma(r.Comparisons), r.Elapsed.Round(time.Microsecond), humanize.Bytes(r.AllocBytes)))
		}
		builder.WriteString("\n")
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

// WriteOptima 크기별 최적 임계값 표
func WriteOptima(w io.Writer, optima []bench.Optimum) error {
	var builder strings.Builder
	builder.WriteString("## 최적 임계값 S*\n\n")
	builder.WriteString("| n | S* | 최소 비교 횟수 |\n")
	builder.WriteString("|---|----|----------------|\n")
	for _, o := range optima {
		builder.WriteString(fmt.Sprintf("| %s | %d | %s |\n",
			humanize.Comma(int64(o.Size)), o.Threshold, humanize.Comma(o.Comparisons)))
	}
	builder.WriteString("\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

// WriteComparison 하이브리드 vs 순수 머지소트 요약
func WriteComparison(w io.Writer, c bench.Comparison) error {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("## 하이브리드(S=%d) vs 순수 머지소트 (n=%s)\n\n",
		c.Hybrid.Threshold, humanize.Comma(int64(c.Hybrid.Size))))
	builder.WriteString("| 알고리즘 | 비교 횟수 | 실행시간 (s) |\n")
	builder.WriteString("|----------|-----------|--------------|\n")
	builder.WriteString(fmt.Sprintf("| 하이브리드 | %s | %.4f |\n", humanize.Comma(c.Hybrid.Comparisons), c.Hybrid.Seconds()))
	builder.WriteString(fmt.Sprintf("| 머지소트 | %s | %.4f |\n\n", humanize.Comma(c.Pure.Comparisons), c.Pure.Seconds()))
	builder.WriteString(fmt.Sprintf("- 비교 횟수 감소: %.2f%%\n", c.ComparisonImprovement))
	builder.WriteString(fmt.Sprintf("- 실행시간 감소: %.2f%%\n\n", c.TimeImprovement))

	_, err := io.WriteString(w, builder.String())
	return err
}
