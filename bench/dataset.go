package bench

import "math/rand"

// Generator 시드 기반 랜덤 데이터 생성기.
// 같은 시드로 만든 Generator는 같은 순서로 같은 데이터셋을 만든다.
type Generator struct {
	rng      *rand.Rand
	maxValue int
}

// NewGenerator maxValue 이하의 양의 정수를 뽑는 생성기
func NewGenerator(seed int64, maxValue int) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		maxValue: maxValue,
	}
}

// Generate 길이 n, 값 범위 [1, maxValue]의 데이터셋
func (g *Generator) Generate(n int) []int {
	data := make([]int, n)
	for i := range n {
		data[i] = g.rng.Intn(g.maxValue) + 1
	}
	return data
}

// GenerateDataset 시드 하나로 데이터셋 하나를 만드는 단축 함수
func GenerateDataset(n, maxValue int, seed int64) []int {
	return NewGenerator(seed, maxValue).Generate(n)
}

// Clone 시행마다 넘길 독립 복사본
func Clone(data []int) []int {
	out := make([]int, len(data))
	copy(out, data)
	return out
}
