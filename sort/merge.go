package sort

// Merge 정렬된 arr[left..mid], arr[mid+1..right]를 병합하고 비교 횟수를 반환한다.
// 호출마다 양쪽 구간 크기의 임시 배열을 새로 할당한다.
func Merge(arr []int, left, mid, right int) int64 {
	l := make([]int, mid-left+1)
	r := make([]int, right-mid)
	copy(l, arr[left:mid+1])
	copy(r, arr[mid+1:right+1])

	var comparisons int64
	i, j, k := 0, 0, left

	for i < len(l) && j < len(r) {
		// 같으면 왼쪽 먼저 (안정 정렬)
		if l[i] <= r[j] {
			arr[k] = l[i]
			i++
		} else {
			arr[k] = r[j]
			j++
		}
		comparisons++
		k++
	}

	// 남은 요소들은 비교 없이 복사
	k += copy(arr[k:], l[i:])
	copy(arr[k:], r[j:])

	return comparisons
}

// MergeBuffered Merge와 같은 병합을 호출자가 넘긴 scratch 버퍼로 수행한다.
// buf[left..right]에 병합 결과를 쓰고 그 구간을 arr로 되돌려 복사한다. buf는 재할당하지 않는다.
func MergeBuffered(arr, buf []int, left, mid, right int) int64 {
	var comparisons int64
	i, j, k := left, mid+1, left

	for i <= mid && j <= right {
		comparisons++
		if arr[i] <= arr[j] {
			buf[k] = arr[i]
			i++
		} else {
			buf[k] = arr[j]
			j++
		}
		k++
	}

	k += copy(buf[k:right+1], arr[i:mid+1])
	copy(buf[k:right+1], arr[j:right+1])

	copy(arr[left:right+1], buf[left:right+1])
	return comparisons
}
