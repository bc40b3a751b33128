package sort

// InsertionSort arr[left..right] 구간을 제자리 삽입정렬하고 키 비교 횟수를 반환한다.
//
// 자리 이동(shift) 한 번마다 비교 1회, 그리고 안쪽 루프가 "크지 않은 원소"를 만나 멈춘 경우
// 그 마지막 비교 1회를 더 센다. 구간 왼쪽 끝을 지나쳐서 멈춘 경우에는 세지 않는다.
func InsertionSort(arr []int, left, right int) int64 {
	var comparisons int64
	for i := left + 1; i <= right; i++ {
		key := arr[i]
		j := i - 1

		for j >= left && arr[j] > key {
			arr[j+1] = arr[j]
			j--
			comparisons++
		}
		// 경계가 아닌 원소 때문에 멈춤
		if j >= left {
			comparisons++
		}
		arr[j+1] = key
	}
	return comparisons
}
