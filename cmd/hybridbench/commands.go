package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"hybridbench/bench"
	"hybridbench/report"
)

func newVarySizeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vary-size",
		Short: "임계값 S 고정, 입력 크기 n 변화",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withSession(func(s *session) error {
				return s.varySize()
			})
		},
	}
}

func newVaryThresholdCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vary-threshold",
		Short: "입력 크기 n 고정, 임계값 S 변화",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withSession(func(s *session) error {
				return s.varyThreshold()
			})
		},
	}
}

func newOptimalCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "optimal",
		Short: "크기별 비교 횟수를 최소화하는 S* 탐색",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withSession(func(s *session) error {
				return s.optimal()
			})
		},
	}
}

func newCompareCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "하이브리드(S) vs 순수 머지소트",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withSession(func(s *session) error {
				return s.compare()
			})
		},
	}
}

func newStrategiesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "복사 병합 vs 버퍼 병합",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withSession(func(s *session) error {
				return s.strategies()
			})
		},
	}
}

func newAllCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "모든 실험을 순서대로 실행",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withSession(func(s *session) error {
				for _, step := range []func() error{s.varySize, s.varyThreshold, s.optimal, s.compare, s.strategies} {
					if err := step(); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (s *session) varySize() error {
	fmt.Printf("=== S=%d 고정, n 변화 ===\n", s.opts.threshold)
	results, err := s.harness.VarySize(s.opts.threshold)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("  n=%12s  comparisons=%s  %v\n", humanize.Comma(int64(r.Size)), humanize.Comma(r.Comparisons), r.Elapsed)
	}
	fmt.Println()
	return s.saveResults("results_vary_n", report.BySize, results)
}

func (s *session) varyThreshold() error {
	fmt.Printf("=== n=%s 고정, S 변화 ===\n", humanize.Comma(int64(s.opts.size)))
	results, err := s.harness.VaryThreshold(s.opts.size)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("  S=%6d  comparisons=%s  %v\n", r.Threshold, humanize.Comma(r.Comparisons), r.Elapsed)
	}
	fmt.Println()
	return s.saveResults("results_vary_S", report.ByThreshold, results)
}

func (s *session) optimal() error {
	fmt.Println("=== 크기별 최적 S* ===")
	optima, err := s.harness.OptimalThresholds()
	if err != nil {
		return err
	}

	var trials []bench.Result
	for _, o := range optima {
		fmt.Printf("  n=%12s  S*=%d  comparisons=%s\n", humanize.Comma(int64(o.Size)), o.Threshold, humanize.Comma(o.Comparisons))
		trials = append(trials, o.Trials...)
	}
	fmt.Println()

	if s.opts.outDir != "" {
		base := filepath.Join(s.opts.outDir, "results_optimal_S")
		if err := report.SaveFile(base+".csv", func(w io.Writer) error {
			return report.WriteOptimaCSV(w, optima)
		}); err != nil {
			return err
		}
		if err := report.SaveFile(base+".md", func(w io.Writer) error {
			return report.WriteOptima(w, optima)
		}); err != nil {
			return err
		}
		if err := report.SaveFile(base+".json", func(w io.Writer) error {
			return report.WriteJSON(w, optima)
		}); err != nil {
			return err
		}
		fmt.Printf("%s.{csv,md,json} 파일이 생성되었습니다.\n", base)
	}

	if s.store != nil {
		run := s.opts.run + "_optimal_trials"
		if err := s.store.Put(run, trials); err != nil {
			return err
		}
		fmt.Printf("%s 저장소에 %d건 저장 (run=%s)\n", s.opts.engine, len(trials), run)
	}
	return nil
}

func (s *session) compare() error {
	fmt.Printf("=== 하이브리드(S=%d) vs 머지소트, n=%s ===\n", s.opts.threshold, humanize.Comma(int64(s.opts.size)))
	c, err := s.harness.Compare(s.opts.size, s.opts.threshold)
	if err != nil {
		return err
	}
	fmt.Printf("  hybrid_sort : %s comparisons | %.4fs\n", humanize.Comma(c.Hybrid.Comparisons), c.Hybrid.Seconds())
	fmt.Printf("  merge_sort  : %s comparisons | %.4fs\n", humanize.Comma(c.Pure.Comparisons), c.Pure.Seconds())
	fmt.Printf("  비교 횟수 감소: %.2f%%, 실행시간 감소: %.2f%%\n\n", c.ComparisonImprovement, c.TimeImprovement)

	if s.opts.outDir != "" {
		base := filepath.Join(s.opts.outDir, "results_compare")
		if err := report.SaveFile(base+".md", func(w io.Writer) error {
			return report.WriteComparison(w, c)
		}); err != nil {
			return err
		}
		if err := report.SaveFile(base+".json", func(w io.Writer) error {
			return report.WriteJSON(w, c)
		}); err != nil {
			return err
		}
	}
	if s.store != nil {
		return s.store.Put(s.opts.run+"_compare", []bench.Result{c.Hybrid, c.Pure})
	}
	return nil
}

func (s *session) strategies() error {
	fmt.Printf("=== 복사 병합 vs 버퍼 병합 (S=%d, n=%s) ===\n", s.opts.threshold, humanize.Comma(int64(s.opts.size)))
	sc, err := s.harness.CompareStrategies(s.opts.size, s.opts.threshold)
	if err != nil {
		return err
	}
	for _, r := range []bench.Result{sc.Copy, sc.Buffered} {
		fmt.Printf("  %-8s : %s comparisons | %.4fs | %s 할당\n",
			r.Strategy, humanize.Comma(r.Comparisons), r.Seconds(), humanize.Bytes(r.AllocBytes))
	}
	fmt.Printf("  실행시간 감소: %.2f%%\n\n", sc.TimeImprovement)

	return s.saveResults("results_strategies", report.BySize, []bench.Result{sc.Copy, sc.Buffered})
}
