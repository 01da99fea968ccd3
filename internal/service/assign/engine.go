package assign

import (
	"strings"

	"lmm-be/internal/service/catalog"
)

type Input struct {
	RoleList   string
	PlayerList string
	// 为空时使用当前时间作为种子，结果不可复现
	Seed string
}

// Assignment 是一个槽位的分配结果，Role 和 Err 二者必有其一
type Assignment struct {
	SlotNumber int
	Slot       string
	Player     *string
	Role       *catalog.Role
	Err        error
}

func (a Assignment) OK() bool {
	return a.Err == nil
}

// Engine 根据角色列表和玩家列表完成一次分配
// 目录只读，可以在多个 goroutine 间共享；随机数生成器每次分配单独创建
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

func (e *Engine) Assign(in Input) ([]Assignment, error) {
	if e == nil || e.catalog == nil || e.catalog.Len() == 0 {
		return nil, ErrCatalogUnavailable
	}

	slots := SplitLines(in.RoleList)
	if len(slots) == 0 {
		return nil, ErrEmptyRoleList
	}

	players := SplitLines(in.PlayerList)
	rnd := NewSeededRandom(strings.TrimSpace(in.Seed))

	// 先打乱玩家，再依次解析槽位，顺序决定了随机数的消耗顺序
	shuffled := Shuffle(players, rnd)

	roles := e.catalog.Roles()
	assignments := make([]Assignment, 0, len(slots))

	for i, slot := range slots {
		a := Assignment{
			SlotNumber: i + 1,
			Slot:       slot,
		}

		if i < len(shuffled) {
			player := shuffled[i]
			a.Player = &player
		}

		role, err := Resolve(roles, slot, rnd)
		if err != nil {
			a.Err = err
		} else {
			a.Role = &role
		}

		assignments = append(assignments, a)
	}

	return assignments, nil
}

// SplitLines 按行拆分文本，去掉首尾空白并丢弃空行
func SplitLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

// Shuffle 返回打乱后的副本
// 从最后一个下标倒序到 1，每次交换消耗一次 src.Next()
func Shuffle(items []string, src Source) []string {
	out := make([]string, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j := pick(src, i+1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
