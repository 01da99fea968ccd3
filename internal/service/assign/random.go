package assign

import (
	"time"
	"unicode/utf16"
)

// 线性同余参数，已保存的种子依赖这些常量才能复现同样的结果
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Source 是分配过程消耗的随机数来源，返回 [0, 1) 之间的数
type Source interface {
	Next() float64
}

// SeededRandom 是一个可复现的伪随机数生成器
// 非并发安全，每次分配都应创建新的实例
type SeededRandom struct {
	state int64
}

// NewSeededRandom 使用字符串种子创建生成器，空字符串表示使用当前时间
func NewSeededRandom(seed string) *SeededRandom {
	if seed == "" {
		return &SeededRandom{state: time.Now().UnixMilli()}
	}

	return &SeededRandom{state: HashSeed(seed)}
}

// HashSeed 把字符串哈希为数值种子
// 按 UTF-16 编码单元迭代，int32 的回绕等价于每一步截断到 32 位
func HashSeed(s string) int64 {
	var hash int32
	for _, c := range utf16.Encode([]rune(s)) {
		hash = (hash << 5) - hash + int32(c)
	}

	// 先扩宽再取绝对值，-2^31 的绝对值在 int32 中无法表示
	h := int64(hash)
	if h < 0 {
		h = -h
	}

	return h
}

func (r *SeededRandom) Next() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// pick 从 n 个候选中均匀选出一个下标，只消耗一次 Next
func pick(src Source, n int) int {
	i := int(src.Next() * float64(n))
	if i >= n {
		i = n - 1
	}

	return i
}
