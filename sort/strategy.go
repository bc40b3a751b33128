package sort

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// MergeStrategy 병합 단계의 메모리 사용 방식
type MergeStrategy int

const (
	// CopyMerge 병합 호출마다 임시 배열 두 개를 새로 할당
	CopyMerge MergeStrategy = iota
	// BufferedMerge 최상위 호출에서 한 번 할당한 scratch 버퍼를 재사용
	BufferedMerge
)

// ErrUnknownStrategy 알 수 없는 병합 방식 이름
var ErrUnknownStrategy = errors.New("unknown merge strategy")

func (m MergeStrategy) String() string {
	switch m {
	case CopyMerge:
		return "copy"
	case BufferedMerge:
		return "buffered"
	default:
		return fmt.Sprintf("MergeStrategy(%d)", int(m))
	}
}

// ParseStrategy "copy" / "buffered" 문자열을 MergeStrategy로 변환
func ParseStrategy(name string) (MergeStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "copy", "copying":
		return CopyMerge, nil
	case "buffered", "buffer":
		return BufferedMerge, nil
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// Sorter 하나의 정렬 설정. 벤치마크 하네스가 이 값을 받아 실행한다.
type Sorter struct {
	Threshold int
	Strategy  MergeStrategy
	// Pure면 Threshold를 무시하고 순수 머지소트로 동작
	Pure bool
	// Iterative면 재귀 대신 작업 스택 버전을 사용
	Iterative bool
}

// Sort arr를 정렬하고 비교 횟수를 반환한다.
func (s Sorter) Sort(arr []int) int64 {
	if s.Iterative {
		threshold := s.Threshold
		if s.Pure {
			threshold = 1
		}
		return HybridSortIterative(arr, threshold, s.Strategy)
	}

	switch {
	case s.Pure && s.Strategy == BufferedMerge:
		return MergeSortBuffered(arr)
	case s.Pure:
		return MergeSort(arr)
	case s.Strategy == BufferedMerge:
		return HybridSortBuffered(arr, s.Threshold)
	default:
		return HybridSort(arr, s.Threshold)
	}
}

// Name 결과 레코드에 기록할 알고리즘 이름
func (s Sorter) Name() string {
	name := "hybrid"
	if s.Pure {
		name = "mergesort"
	}
	if s.Iterative {
		name += "_iterative"
	}
	return name
}
