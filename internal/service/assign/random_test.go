package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSeed_KnownValues(t *testing.T) {
	cases := map[string]int64{
		"a":     97,
		"ab":    3105,
		"hello": 99162322,
		// 哈希结果恰好是 -2^31，取绝对值后必须是 2^31
		"polygenelubricants": 2147483648,
		"é":                  233,
		// 代理对按两个 UTF-16 编码单元参与哈希
		"😀":          1772899,
		"game night": 838171030,
	}

	for in, want := range cases {
		assert.Equal(t, want, HashSeed(in), "seed %q", in)
	}
}

func TestHashSeed_Stable(t *testing.T) {
	assert.Equal(t, HashSeed("town of salem"), HashSeed("town of salem"))
}

func TestSeededRandom_KnownSequence(t *testing.T) {
	r := NewSeededRandom("a")

	assert.Equal(t, 18374.0/233280, r.Next())
	assert.Equal(t, 184911.0/233280, r.Next())
	assert.Equal(t, 166348.0/233280, r.Next())
}

func TestSeededRandom_SameSeedSameSequence(t *testing.T) {
	a := NewSeededRandom("mafia-night-7")
	b := NewSeededRandom("mafia-night-7")

	for i := 0; i < 1000; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("sequences diverged at %d: %v != %v", i, x, y)
		}
	}
}

func TestSeededRandom_NextInUnitInterval(t *testing.T) {
	for _, seed := range []string{"", "a", "polygenelubricants", "😀", "0"} {
		r := NewSeededRandom(seed)
		for i := 0; i < 5000; i++ {
			v := r.Next()
			if v < 0 || v >= 1 {
				t.Fatalf("seed %q draw %d out of range: %v", seed, i, v)
			}
		}
	}
}

type scripted struct {
	draws []float64
	calls int
}

func (s *scripted) Next() float64 {
	v := s.draws[s.calls%len(s.draws)]
	s.calls++
	return v
}

func TestPick_ClampsToLastIndex(t *testing.T) {
	assert.Equal(t, 2, pick(&scripted{draws: []float64{1}}, 3))
	assert.Equal(t, 0, pick(&scripted{draws: []float64{0.999}}, 1))
	assert.Equal(t, 1, pick(&scripted{draws: []float64{0.5}}, 2))
}
