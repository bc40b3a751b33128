package sort

// cutoff 실제로 적용할 삽입정렬 임계값.
// S < 1이면 원소 1개 구간에서 재귀가 끝나지 않으므로 1로 올린다 (S=0, S=1은 순수 머지소트와 동일).
func cutoff(s int) int {
	if s < 1 {
		return 1
	}
	return s
}

// HybridSort 머지소트 + 삽입정렬 하이브리드. 구간 길이가 s 이하이면 삽입정렬로 전환한다.
// 병합마다 임시 배열을 할당하는 복사 방식 병합을 쓴다.
func HybridSort(arr []int, s int) int64 {
	if len(arr) < 2 {
		return 0
	}
	return hybridSort(arr, 0, len(arr)-1, cutoff(s))
}

// HybridSortRange arr[left..right] 구간만 하이브리드 정렬한다.
func HybridSortRange(arr []int, left, right, s int) int64 {
	if left >= right {
		return 0
	}
	return hybridSort(arr, left, right, cutoff(s))
}

func hybridSort(arr []int, left, right, s int) int64 {
	if right-left+1 <= s {
		return InsertionSort(arr, left, right)
	}

	mid := (left + right) / 2
	comparisons := hybridSort(arr, left, mid, s)
	comparisons += hybridSort(arr, mid+1, right, s)
	comparisons += Merge(arr, left, mid, right)
	return comparisons
}

// HybridSortBuffered HybridSort와 같지만 정렬 전체에서 scratch 버퍼 하나를 재사용한다.
func HybridSortBuffered(arr []int, s int) int64 {
	if len(arr) < 2 {
		return 0
	}
	buf := make([]int, len(arr))
	return hybridSortBuffered(arr, buf, 0, len(arr)-1, cutoff(s))
}

func hybridSortBuffered(arr, buf []int, left, right, s int) int64 {
	if right-left+1 <= s {
		return InsertionSort(arr, left, right)
	}

	mid := (left + right) / 2
	comparisons := hybridSortBuffered(arr, buf, left, mid, s)
	comparisons += hybridSortBuffered(arr, buf, mid+1, right, s)
	comparisons += MergeBuffered(arr, buf, left, mid, right)
	return comparisons
}

// MergeSort 순수 머지소트 (비교 기준선).
func MergeSort(arr []int) int64 {
	return MergeSortRange(arr, 0, len(arr)-1)
}

// MergeSortRange arr[left..right] 구간 순수 머지소트.
func MergeSortRange(arr []int, left, right int) int64 {
	if left >= right {
		return 0
	}

	mid := (left + right) / 2
	comparisons := MergeSortRange(arr, left, mid)
	comparisons += MergeSortRange(arr, mid+1, right)
	comparisons += Merge(arr, left, mid, right)
	return comparisons
}

// MergeSortBuffered 버퍼 재사용 순수 머지소트.
func MergeSortBuffered(arr []int) int64 {
	if len(arr) < 2 {
		return 0
	}
	buf := make([]int, len(arr))
	return mergeSortBuffered(arr, buf, 0, len(arr)-1)
}

func mergeSortBuffered(arr, buf []int, left, right int) int64 {
	if left >= right {
		return 0
	}

	mid := (left + right) / 2
	comparisons := mergeSortBuffered(arr, buf, left, mid)
	comparisons += mergeSortBuffered(arr, buf, mid+1, right)
	comparisons += MergeBuffered(arr, buf, left, mid, right)
	return comparisons
}
