package rolelist

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lmm-be/internal/service/catalog"

	"go.uber.org/zap"
)

// 加载失败时使用的默认人数范围
const (
	fallbackMin     = 8
	fallbackMax     = 12
	fallbackDefault = 12

	preferredDefault = 12
	minimumDefault   = 8
)

// Rolelists 是按玩家人数索引的推荐角色列表
type Rolelists struct {
	lists  map[int][]string
	counts []int

	min, max, def int
}

func New(lists map[int][]string) *Rolelists {
	r := &Rolelists{
		lists:  make(map[int][]string, len(lists)),
		counts: make([]int, 0, len(lists)),
	}

	for n, slots := range lists {
		copied := make([]string, len(slots))
		copy(copied, slots)
		r.lists[n] = copied
		r.counts = append(r.counts, n)
	}
	sort.Ints(r.counts)

	if len(r.counts) == 0 {
		r.min, r.max, r.def = fallbackMin, fallbackMax, fallbackDefault
		return r
	}

	r.min = r.counts[0]
	r.max = r.counts[len(r.counts)-1]
	r.def = r.counts[0]

	if _, ok := r.lists[preferredDefault]; ok {
		r.def = preferredDefault
	} else {
		for _, n := range r.counts {
			if n >= minimumDefault {
				r.def = n
				break
			}
		}
	}

	return r
}

// Fallback 在 rolelists.json 不可用时使用，页面仍可以调整人数但没有列表
func Fallback() *Rolelists {
	return New(nil)
}

func Load(ctx context.Context, source string) (*Rolelists, error) {
	data, err := catalog.ReadSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load rolelists: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode rolelists: %w", err)
	}

	lists := make(map[int][]string, len(raw))
	for key, slots := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("decode rolelists: invalid player count %q", key)
		}
		lists[n] = slots
	}

	r := New(lists)

	zap.L().Info(
		"角色列表加载成功",
		zap.String("source", source),
		zap.Int("player_counts", len(r.counts)),
	)

	return r, nil
}

func (r *Rolelists) Min() int     { return r.min }
func (r *Rolelists) Max() int     { return r.max }
func (r *Rolelists) Default() int { return r.def }

func (r *Rolelists) Counts() []int {
	counts := make([]int, len(r.counts))
	copy(counts, r.counts)
	return counts
}

// Get 返回指定人数的角色列表，不存在时返回空列表
func (r *Rolelists) Get(n int) []string {
	slots := r.lists[n]
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// Text 是复制到剪贴板的内容，可以直接粘贴进分配工具
func (r *Rolelists) Text(n int) string {
	return strings.Join(r.lists[n], "\n")
}

// Clamp 把人数限制在 [Min, Max] 之间
func (r *Rolelists) Clamp(n int) int {
	if n < r.min {
		return r.min
	}
	if n > r.max {
		return r.max
	}
	return n
}
