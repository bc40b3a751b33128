package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"hybridbench/bench"
	"hybridbench/kvdb"
	"hybridbench/report"
	"hybridbench/sort"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("hybridbench: %v", err)
	}
}

// options 명령행 플래그
type options struct {
	cfg        bench.Config
	strategy   string
	threshold  int
	size       int
	outDir     string
	engine     string
	storePath  string
	run        string
	metricsOut string
	verbose    bool
}

// session 명령 하나가 실행되는 동안 쓰는 하네스/저장소/지표
type session struct {
	opts    *options
	harness *bench.Harness
	reg     *prometheus.Registry
	store   kvdb.Store
}

func (o *options) open() (*session, error) {
	strategy, err := sort.ParseStrategy(o.strategy)
	if err != nil {
		return nil, err
	}
	cfg := o.cfg
	cfg.Strategy = strategy

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	harnessOpts := []bench.Option{bench.WithMetrics(bench.NewMetrics(reg))}
	if o.verbose {
		harnessOpts = append(harnessOpts, bench.WithLogger(log.New(os.Stderr, "[bench] ", log.LstdFlags)))
	}
	h, err := bench.New(cfg, harnessOpts...)
	if err != nil {
		return nil, err
	}

	if o.outDir != "" {
		if err := os.MkdirAll(o.outDir, 0o755); err != nil {
			return nil, err
		}
	}
	s := &session{opts: o, harness: h, reg: reg}
	if o.engine != "" {
		s.store, err = kvdb.Open(o.engine, o.storePath)
		if err != nil {
			return nil, err
		}
	}

	fmt.Printf("CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Printf("병합 방식: %s, 시드: %d, 값 범위: [1, %d]\n\n", cfg.Strategy, cfg.Seed, cfg.ValueBound)
	return s, nil
}

func (s *session) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			fmt.Printf("저장소 닫기 오류: %v\n", err)
		}
	}
}

// finish 지표를 textfile 형식으로 남긴다.
func (s *session) finish() error {
	if s.opts.metricsOut == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.opts.metricsOut, s.reg); err != nil {
		return err
	}
	fmt.Printf("%s 파일이 생성되었습니다.\n", s.opts.metricsOut)
	return nil
}

// withSession 세션을 열고 fn 실행 후 정리한다.
func (o *options) withSession(fn func(s *session) error) error {
	s, err := o.open()
	if err != nil {
		return err
	}
	defer s.close()

	if err := fn(s); err != nil {
		return err
	}
	return s.finish()
}

// saveResults 결과를 출력 디렉터리(csv/md/json)와 저장소에 남긴다.
func (s *session) saveResults(name string, column report.Column, results []bench.Result) error {
	if s.opts.outDir != "" {
		base := filepath.Join(s.opts.outDir, name)
		if err := report.SaveFile(base+".csv", func(w io.Writer) error {
			return report.WriteCSV(w, column, results)
		}); err != nil {
			return err
		}
		if err := report.SaveFile(base+".md", func(w io.Writer) error {
			return report.WriteMarkdown(w, "정렬 알고리즘 벤치마크 결과", results)
		}); err != nil {
			return err
		}
		if err := report.SaveFile(base+".json", func(w io.Writer) error {
			return report.WriteJSON(w, results)
		}); err != nil {
			return err
		}
		fmt.Printf("%s.{csv,md,json} 파일이 생성되었습니다.\n", base)
	}

	if s.store != nil {
		run := s.opts.run + "_" + name
		if err := s.store.Put(run, results); err != nil {
			return err
		}
		fmt.Printf("%s 저장소에 %d건 저장 (run=%s)\n", s.opts.engine, len(results), run)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	def := bench.DefaultConfig()
	o := &options{cfg: def}

	root := &cobra.Command{
		Use:           "hybridbench",
		Short:         "하이브리드 머지소트(삽입정렬 임계값 S) 비교 횟수/실행시간 벤치마크",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.IntSliceVar(&o.cfg.Sizes, "sizes", def.Sizes, "스윕할 입력 크기 목록")
	flags.IntSliceVar(&o.cfg.Thresholds, "thresholds", def.Thresholds, "스윕할 임계값 S 목록")
	flags.Int64Var(&o.cfg.Seed, "seed", def.Seed, "데이터셋 시드")
	flags.IntVar(&o.cfg.ValueBound, "max-value", def.ValueBound, "값 범위 상한 [1, max-value]")
	flags.BoolVar(&o.cfg.Iterative, "iterative", false, "재귀 대신 작업 스택 버전 사용")
	flags.StringVar(&o.strategy, "strategy", sort.CopyMerge.String(), "병합 방식 (copy | buffered)")
	flags.IntVar(&o.threshold, "threshold", 32, "고정 임계값 S")
	flags.IntVar(&o.size, "size", 100_000, "고정 입력 크기 n")
	flags.StringVar(&o.outDir, "out", "", "결과 파일(csv/md/json) 디렉터리")
	flags.StringVar(&o.engine, "store", "", "결과 저장소 엔진 (bbolt | badger | pebble)")
	flags.StringVar(&o.storePath, "store-path", "results.db", "저장소 경로")
	flags.StringVar(&o.run, "run", time.Now().Format("20060102-150405"), "저장소에 기록할 실행 이름")
	flags.StringVar(&o.metricsOut, "metrics", "", "Prometheus textfile 출력 경로")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "시행별 로그 출력")

	root.AddCommand(
		newVarySizeCmd(o),
		newVaryThresholdCmd(o),
		newOptimalCmd(o),
		newCompareCmd(o),
		newStrategiesCmd(o),
		newAllCmd(o),
	)
	return root
}
