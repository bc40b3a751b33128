package bench

import (
	"runtime"
	"time"
)

// runStats 한 번의 정렬 호출을 감싸는 측정 구간
type runStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// startStats 측정 시작. GC는 타이머 시작 전에 끝낸다.
func startStats() *runStats {
	runtime.GC()

	s := &runStats{}
	runtime.ReadMemStats(&s.startMem)
	s.startTime = time.Now()
	return s
}

// endStats 측정 종료. 경과 시간을 먼저 잡고 나서 메모리 통계를 읽는다.
func (s *runStats) endStats() (time.Duration, uint64) {
	elapsed := time.Since(s.startTime)

	runtime.ReadMemStats(&s.endMem)
	return elapsed, s.endMem.TotalAlloc - s.startMem.TotalAlloc
}
