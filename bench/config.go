package bench

import (
	"github.com/cockroachdb/errors"

	"hybridbench/sort"
)

// ErrInvalidConfig 스윕 파라미터가 잘못된 경우. 정렬 작업을 시작하기 전에 반환된다.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Config 벤치마크 하네스 설정. 실행 시점에 하네스로 넘긴다.
type Config struct {
	Sizes      []int              `json:"sizes"`
	Thresholds []int              `json:"thresholds"`
	Seed       int64              `json:"seed"`
	ValueBound int                `json:"value_bound"` // 값 범위 [1, ValueBound]
	Strategy   sort.MergeStrategy `json:"strategy"`
	Iterative  bool               `json:"iterative"`
}

// DefaultConfig 기본 실험 설정
func DefaultConfig() Config {
	thresholds := make([]int, 100)
	for i := range thresholds {
		thresholds[i] = i + 1
	}

	return Config{
		Sizes: []int{
			1_000, 2_000, 5_000, 10_000, 20_000, 50_000,
			100_000, 200_000, 500_000, 1_000_000,
		},
		Thresholds: thresholds,
		Seed:       42, // 고정 시드로 재현 가능한 벤치마크
		ValueBound: 10_000_000,
		Strategy:   sort.CopyMerge,
	}
}

// Validate 값 범위, 크기, 임계값을 검사한다. 빈 목록은 여기서 거르지 않고 각 스윕이 검사한다.
func (c Config) Validate() error {
	if c.ValueBound <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "value bound must be positive, got %d", c.ValueBound)
	}
	for i, n := range c.Sizes {
		if n <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "sizes[%d] must be positive, got %d", i, n)
		}
	}
	for i, s := range c.Thresholds {
		if s < 0 {
			return errors.Wrapf(ErrInvalidConfig, "thresholds[%d] must be non-negative, got %d", i, s)
		}
	}
	return nil
}

func requireSizes(sizes []int) error {
	if len(sizes) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no sizes to sweep")
	}
	return nil
}

func requireThresholds(thresholds []int) error {
	if len(thresholds) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no thresholds to sweep")
	}
	return nil
}

func checkSize(n int) error {
	if n <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "size must be positive, got %d", n)
	}
	return nil
}

func checkThreshold(s int) error {
	if s < 0 {
		return errors.Wrapf(ErrInvalidConfig, "threshold must be non-negative, got %d", s)
	}
	return nil
}
