package bench

import (
	"io"
	"log"

	"github.com/cockroachdb/errors"

	"hybridbench/sort"
)

// ErrCountMismatch 복사 병합과 버퍼 병합의 비교 횟수가 다를 때
var ErrCountMismatch = errors.New("merge strategies disagree on comparison count")

// Harness 크기/임계값 스윕을 실행하고 결과 레코드를 모은다.
// 단일 스레드로 순차 실행하며, 여러 시행이 공유하는 데이터셋은 절대 변경하지 않는다.
type Harness struct {
	cfg     Config
	logger  *log.Logger
	metrics *Metrics
}

// Option 하네스 옵션
type Option func(*Harness)

// WithLogger 시행마다 진행 상황을 남길 로거
func WithLogger(l *log.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics 시행 결과를 반영할 Prometheus 지표
func WithMetrics(m *Metrics) Option {
	return func(h *Harness) {
		h.metrics = m
	}
}

// New 설정을 검증하고 하네스를 만든다.
func New(cfg Config, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Harness{
		cfg:    cfg,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Config 하네스가 사용하는 설정
func (h *Harness) Config() Config {
	return h.cfg
}

func (h *Harness) hybrid(threshold int) sort.Sorter {
	return sort.Sorter{
		Threshold: threshold,
		Strategy:  h.cfg.Strategy,
		Iterative: h.cfg.Iterative,
	}
}

func (h *Harness) pure() sort.Sorter {
	return sort.Sorter{
		Pure:      true,
		Strategy:  h.cfg.Strategy,
		Iterative: h.cfg.Iterative,
	}
}

func (h *Harness) generator() *Generator {
	return NewGenerator(h.cfg.Seed, h.cfg.ValueBound)
}

// run 정렬 한 번: 복사본 준비 → 측정 시작 → 정렬 → 측정 종료.
// 데이터 복사는 측정 구간에 포함되지 않는다.
func (h *Harness) run(experiment string, sorter sort.Sorter, data []int) Result {
	testData := Clone(data)

	stats := startStats()
	comparisons := sorter.Sort(testData)
	elapsed, alloc := stats.endStats()

	threshold := sorter.Threshold
	if sorter.Pure {
		threshold = 0
	}
	r := Result{
		Experiment:  experiment,
		Algorithm:   sorter.Name(),
		Strategy:    sorter.Strategy.String(),
		Size:        len(data),
		Threshold:   threshold,
		Comparisons: comparisons,
		Elapsed:     elapsed,
		AllocBytes:  alloc,
	}
	h.metrics.observe(r)
	h.logger.Printf("%s %s n=%d S=%d comparisons=%d elapsed=%v",
		experiment, r.Algorithm, r.Size, r.Threshold, r.Comparisons, r.Elapsed)
	return r
}

// VarySize 임계값을 고정하고 크기마다 새 데이터셋으로 정렬한다.
func (h *Harness) VarySize(threshold int) ([]Result, error) {
	if err := requireSizes(h.cfg.Sizes); err != nil {
		return nil, err
	}
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}

	gen := h.generator()
	sorter := h.hybrid(threshold)
	results := make([]Result, 0, len(h.cfg.Sizes))
	for _, n := range h.cfg.Sizes {
		results = append(results, h.run(ExperimentVarySize, sorter, gen.Generate(n)))
	}
	return results, nil
}

// VaryThreshold 크기를 고정하고 데이터셋 하나를 만든 뒤, 임계값마다 그 복사본을 정렬한다.
func (h *Harness) VaryThreshold(size int) ([]Result, error) {
	if err := requireThresholds(h.cfg.Thresholds); err != nil {
		return nil, err
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}

	base := h.generator().Generate(size)
	results := make([]Result, 0, len(h.cfg.Thresholds))
	for _, s := range h.cfg.Thresholds {
		results = append(results, h.run(ExperimentVaryThreshold, h.hybrid(s), base))
	}
	return results, nil
}

// OptimalThresholds 크기마다 모든 후보 임계값을 같은 기준 데이터셋의 복사본에 돌려
// 비교 횟수가 가장 적은 임계값을 고른다. 동률이면 먼저 나온 값이 이긴다.
func (h *Harness) OptimalThresholds() ([]Optimum, error) {
	if err := requireSizes(h.cfg.Sizes); err != nil {
		return nil, err
	}
	if err := requireThresholds(h.cfg.Thresholds); err != nil {
		return nil, err
	}

	gen := h.generator()
	optima := make([]Optimum, 0, len(h.cfg.Sizes))
	for _, n := range h.cfg.Sizes {
		base := gen.Generate(n)

		opt := Optimum{Size: n, Trials: make([]Result, 0, len(h.cfg.Thresholds))}
		for i, s := range h.cfg.Thresholds {
			r := h.run(ExperimentOptimal, h.hybrid(s), base)
			opt.Trials = append(opt.Trials, r)

			if i == 0 || r.Comparisons < opt.Comparisons {
				opt.Threshold = s
				opt.Comparisons = r.Comparisons
			}
		}
		h.logger.Printf("optimal n=%d S*=%d comparisons=%d", n, opt.Threshold, opt.Comparisons)
		optima = append(optima, opt)
	}
	return optima, nil
}

// Compare 같은 데이터셋의 복사본으로 하이브리드(threshold)와 순수 머지소트를 비교한다.
func (h *Harness) Compare(size, threshold int) (Comparison, error) {
	if err := checkSize(size); err != nil {
		return Comparison{}, err
	}
	if err := checkThreshold(threshold); err != nil {
		return Comparison{}, err
	}

	base := h.generator().Generate(size)
	hybrid := h.run(ExperimentCompare, h.hybrid(threshold), base)
	pure := h.run(ExperimentCompare, h.pure(), base)

	return Comparison{
		Hybrid:                hybrid,
		Pure:                  pure,
		ComparisonImprovement: Improvement(float64(pure.Comparisons), float64(hybrid.Comparisons)),
		TimeImprovement:       Improvement(pure.Seconds(), hybrid.Seconds()),
	}, nil
}

// CompareStrategies 같은 데이터셋에서 복사 병합과 버퍼 병합 하이브리드 정렬을 비교한다.
// 두 방식의 비교 횟수는 반드시 같아야 한다.
func (h *Harness) CompareStrategies(size, threshold int) (StrategyComparison, error) {
	if err := checkSize(size); err != nil {
		return StrategyComparison{}, err
	}
	if err := checkThreshold(threshold); err != nil {
		return StrategyComparison{}, err
	}

	base := h.generator().Generate(size)

	copySorter := h.hybrid(threshold)
	copySorter.Strategy = sort.CopyMerge
	bufSorter := h.hybrid(threshold)
	bufSorter.Strategy = sort.BufferedMerge

	c := h.run(ExperimentStrategies, copySorter, base)
	b := h.run(ExperimentStrategies, bufSorter, base)
	if c.Comparisons != b.Comparisons {
		return StrategyComparison{}, errors.Wrapf(ErrCountMismatch, "copy=%d buffered=%d", c.Comparisons, b.Comparisons)
	}

	return StrategyComparison{
		Copy:            c,
		Buffered:        b,
		TimeImprovement: Improvement(c.Seconds(), b.Seconds()),
	}, nil
}
