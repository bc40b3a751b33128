package sort

// frame 작업 스택에 쌓이는 대기 구간.
// split이 true면 두 하위 구간 정렬이 끝났고 병합만 남은 상태.
type frame struct {
	left, right int
	split       bool
}

// HybridSortIterative 재귀 대신 명시적 작업 스택으로 하이브리드 정렬을 수행한다.
// 순회 순서(왼쪽 → 오른쪽 → 병합)가 재귀 버전과 같으므로 비교 횟수도 정확히 같다.
func HybridSortIterative(arr []int, s int, strategy MergeStrategy) int64 {
	if len(arr) < 2 {
		return 0
	}
	s = cutoff(s)

	merge := Merge
	if strategy == BufferedMerge {
		buf := make([]int, len(arr))
		merge = func(arr []int, left, mid, right int) int64 {
			return MergeBuffered(arr, buf, left, mid, right)
		}
	}

	var comparisons int64
	// 깊이는 O(log n)이라 스택도 작게 유지됨
	stack := []frame{{left: 0, right: len(arr) - 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mid := (f.left + f.right) / 2
		if f.split {
			comparisons += merge(arr, f.left, mid, f.right)
			continue
		}
		if f.right-f.left+1 <= s {
			comparisons += InsertionSort(arr, f.left, f.right)
			continue
		}

		// LIFO이므로 병합 → 오른쪽 → 왼쪽 순으로 쌓는다
		stack = append(stack,
			frame{left: f.left, right: f.right, split: true},
			frame{left: mid + 1, right: f.right},
			frame{left: f.left, right: mid},
		)
	}
	return comparisons
}
