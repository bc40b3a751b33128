package bench

import (
	"bytes"
	"log"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"hybridbench/sort"
)

func testConfig() Config {
	return Config{
		Sizes:      []int{100, 500, 1000},
		Thresholds: []int{0, 1, 2, 5, 16, 64},
		Seed:       42,
		ValueBound: 1_000_000,
	}
}

func newHarness(t *testing.T, cfg Config, opts ...Option) *Harness {
	t.Helper()
	h, err := New(cfg, opts...)
	require.NoError(t, err)
	return h
}

func TestGeneratorReproducible(t *testing.T) {
	a := NewGenerator(7, 100)
	b := NewGenerator(7, 100)
	for _, n := range []int{0, 1, 50, 1000} {
		require.Equal(t, a.Generate(n), b.Generate(n), "n=%d", n)
	}

	data := GenerateDataset(10_000, 100, 7)
	for _, v := range data {
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 100)
	}
	require.NotEqual(t, data, GenerateDataset(10_000, 100, 8))
}

func TestGeneratorMaxValueOne(t *testing.T) {
	for _, v := range GenerateDataset(100, 1, 3) {
		require.Equal(t, 1, v)
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"zero_value_bound", func(c *Config) { c.ValueBound = 0 }},
		{"negative_value_bound", func(c *Config) { c.ValueBound = -1 }},
		{"zero_size", func(c *Config) { c.Sizes = []int{10, 0} }},
		{"negative_size", func(c *Config) { c.Sizes = []int{-5} }},
		{"negative_threshold", func(c *Config) { c.Thresholds = []int{1, -1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.edit(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			_, err := New(cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSweepsRejectMissingParameters(t *testing.T) {
	cfg := testConfig()
	cfg.Sizes = nil
	cfg.Thresholds = nil
	h := newHarness(t, cfg)

	_, err := h.VarySize(8)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = h.VaryThreshold(100)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = h.OptimalThresholds()
	require.ErrorIs(t, err, ErrInvalidConfig)

	h = newHarness(t, testConfig())
	_, err = h.VarySize(-1)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = h.VaryThreshold(0)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = h.Compare(0, 4)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = h.Compare(10, -4)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = h.CompareStrategies(-10, 4)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestVarySize(t *testing.T) {
	cfg := testConfig()
	h := newHarness(t, cfg)

	results, err := h.VarySize(8)
	require.NoError(t, err)
	require.Len(t, results, len(cfg.Sizes))

	// 크기마다 같은 시드 스트림에서 새 데이터셋을 뽑음
	gen := NewGenerator(cfg.Seed, cfg.ValueBound)
	for i, n := range cfg.Sizes {
		data := gen.Generate(n)
		r := results[i]

		require.Equal(t, ExperimentVarySize, r.Experiment)
		require.Equal(t, "hybrid", r.Algorithm)
		require.Equal(t, n, r.Size)
		require.Equal(t, 8, r.Threshold)
		require.Equal(t, sort.HybridSort(data, 8), r.Comparisons)
		require.GreaterOrEqual(t, r.Elapsed.Nanoseconds(), int64(0))
	}
}

func TestVaryThresholdUsesOneDataset(t *testing.T) {
	cfg := testConfig()
	h := newHarness(t, cfg)

	const size = 64
	results, err := h.VaryThreshold(size)
	require.NoError(t, err)
	require.Len(t, results, len(cfg.Thresholds))

	base := GenerateDataset(size, cfg.ValueBound, cfg.Seed)
	pure := sort.MergeSort(Clone(base))
	insertion := sort.InsertionSort(Clone(base), 0, size-1)

	for i, s := range cfg.Thresholds {
		r := results[i]
		require.Equal(t, s, r.Threshold)
		require.Equal(t, sort.HybridSort(Clone(base), s), r.Comparisons, "S=%d", s)

		switch {
		case s <= 1:
			require.Equal(t, pure, r.Comparisons)
		case s >= size:
			require.Equal(t, insertion, r.Comparisons)
		}
	}
}

func TestOptimalThresholdsDeterministic(t *testing.T) {
	cfg := Config{
		Sizes:      []int{1000},
		Thresholds: []int{1, 2, 3, 4, 5},
		Seed:       2024,
		ValueBound: 10_000_000,
	}

	first, err := newHarness(t, cfg).OptimalThresholds()
	require.NoError(t, err)
	second, err := newHarness(t, cfg).OptimalThresholds()
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Equal(t, first[0].Threshold, second[0].Threshold)
	require.Equal(t, first[0].Comparisons, second[0].Comparisons)

	// 최소값 중 가장 먼저 나온 임계값이어야 함
	opt := first[0]
	require.Len(t, opt.Trials, len(cfg.Thresholds))
	best := opt.Trials[0]
	for _, r := range opt.Trials[1:] {
		if r.Comparisons < best.Comparisons {
			best = r
		}
	}
	require.Equal(t, best.Threshold, opt.Threshold)
	require.Equal(t, best.Comparisons, opt.Comparisons)
}

func TestOptimalThresholdsFirstMinimumWins(t *testing.T) {
	// S=0과 S=1은 비교 횟수가 같으므로 먼저 나온 0이 선택되어야 함
	cfg := Config{
		Sizes:      []int{200},
		Thresholds: []int{0, 1},
		Seed:       1,
		ValueBound: 1000,
	}
	optima, err := newHarness(t, cfg).OptimalThresholds()
	require.NoError(t, err)
	require.Equal(t, optima[0].Trials[0].Comparisons, optima[0].Trials[1].Comparisons)
	require.Equal(t, 0, optima[0].Threshold)
}

func TestCompareCollapses(t *testing.T) {
	cfg := testConfig()
	h := newHarness(t, cfg)

	const size = 128
	base := GenerateDataset(size, cfg.ValueBound, cfg.Seed)

	// S = n: 삽입정렬 하나로 수렴
	c, err := h.Compare(size, size)
	require.NoError(t, err)
	require.Equal(t, sort.InsertionSort(Clone(base), 0, size-1), c.Hybrid.Comparisons)
	require.Equal(t, sort.MergeSort(Clone(base)), c.Pure.Comparisons)
	require.Equal(t, "mergesort", c.Pure.Algorithm)
	require.Equal(t, Improvement(float64(c.Pure.Comparisons), float64(c.Hybrid.Comparisons)), c.ComparisonImprovement)

	// S = 1: 순수 머지소트와 동일
	c, err = h.Compare(size, 1)
	require.NoError(t, err)
	require.Equal(t, c.Pure.Comparisons, c.Hybrid.Comparisons)
	require.Zero(t, c.ComparisonImprovement)
}

func TestCompareStrategies(t *testing.T) {
	for _, iterative := range []bool{false, true} {
		cfg := testConfig()
		cfg.Iterative = iterative
		h := newHarness(t, cfg)

		sc, err := h.CompareStrategies(2000, 12)
		require.NoError(t, err)
		require.Equal(t, sc.Copy.Comparisons, sc.Buffered.Comparisons)
		require.Equal(t, "copy", sc.Copy.Strategy)
		require.Equal(t, "buffered", sc.Buffered.Strategy)
	}
}

func TestRunDoesNotMutateDataset(t *testing.T) {
	h := newHarness(t, testConfig())

	data := []int{5, 3, 1, 4, 2}
	r := h.run("test", sort.Sorter{Threshold: 5}, data)

	require.Equal(t, []int{5, 3, 1, 4, 2}, data)
	require.Equal(t, int64(9), r.Comparisons)
}

func TestImprovement(t *testing.T) {
	require.Zero(t, Improvement(0, 10))
	require.Zero(t, Improvement(0, 0))
	require.InDelta(t, 25.0, Improvement(100, 75), 1e-9)
	require.InDelta(t, -50.0, Improvement(10, 15), 1e-9)
}

func TestHarnessMetricsAndLogger(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	var buf bytes.Buffer

	cfg := testConfig()
	h := newHarness(t, cfg, WithMetrics(m), WithLogger(log.New(&buf, "", 0)))

	results, err := h.VaryThreshold(256)
	require.NoError(t, err)

	var total int64
	for _, r := range results {
		total += r.Comparisons
	}
	require.Equal(t, float64(len(cfg.Thresholds)), testutil.ToFloat64(m.runs.WithLabelValues(ExperimentVaryThreshold)))
	require.Equal(t, float64(total), testutil.ToFloat64(m.comparisons.WithLabelValues("hybrid", "copy")))
	require.Contains(t, buf.String(), "vary_threshold hybrid n=256")

	n, err := testutil.GatherAndCount(reg, "hybridbench_sort_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
