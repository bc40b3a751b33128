package bench

import "time"

// 실험 이름
const (
	ExperimentVarySize      = "vary_size"
	ExperimentVaryThreshold = "vary_threshold"
	ExperimentOptimal       = "optimal_threshold"
	ExperimentCompare       = "compare"
	ExperimentStrategies    = "compare_strategies"
)

// Result 스윕 지점 하나의 결과. 만든 뒤에는 수정하지 않는다.
type Result struct {
	Experiment  string        `json:"experiment"`
	Algorithm   string        `json:"algorithm"`
	Strategy    string        `json:"strategy"`
	Size        int           `json:"size"`
	Threshold   int           `json:"threshold"`
	Comparisons int64         `json:"comparisons"`
	Elapsed     time.Duration `json:"elapsed"`
	AllocBytes  uint64        `json:"alloc_bytes"`
}

// Seconds 경과 시간 (초)
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Optimum 크기 하나에 대한 최적 임계값 탐색 결과
type Optimum struct {
	Size        int      `json:"size"`
	Threshold   int      `json:"optimal_threshold"`
	Comparisons int64    `json:"comparisons"`
	Trials      []Result `json:"trials"`
}

// Comparison 하이브리드 vs 순수 머지소트 비교
type Comparison struct {
	Hybrid Result `json:"hybrid"`
	Pure   Result `json:"pure"`
	// 순수 머지소트 대비 감소율 (%)
	ComparisonImprovement float64 `json:"comparison_improvement_pct"`
	TimeImprovement       float64 `json:"time_improvement_pct"`
}

// StrategyComparison 같은 데이터에서 복사 병합 vs 버퍼 병합
type StrategyComparison struct {
	Copy     Result `json:"copy"`
	Buffered Result `json:"buffered"`
	// 복사 병합 대비 시간 감소율 (%)
	TimeImprovement float64 `json:"time_improvement_pct"`
}

// Improvement baseline 대비 value의 감소율 (%). baseline이 0이면 0을 반환한다.
func Improvement(baseline, value float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (baseline - value) / baseline * 100
}
