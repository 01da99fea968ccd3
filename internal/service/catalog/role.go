package catalog

import "strings"

// 名字中的换行标记，渲染时用于把 "Little Miss" 和名字分成两行
const nameBreak = "<br>"

// Role 是 roles.json 中的一条角色记录，加载后只读
type Role struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Abilities []string `json:"abilities"`
	// 可空，详情页优先展示完整能力描述
	FullAbilities []string `json:"fullAbilities,omitempty"`
	Archetype     string   `json:"archetype"`
	Wincon        string   `json:"wincon"`
}

// Alignment 返回 archetype 的第一个单词，例如 "Town"
func (r Role) Alignment() string {
	alignment, _, _ := strings.Cut(r.Archetype, " ")
	return alignment
}

// ArchetypeRemainder 返回去掉阵营单词后的剩余部分，例如 "Investigative"
func (r Role) ArchetypeRemainder() string {
	fields := strings.Fields(r.Archetype)
	if len(fields) < 2 {
		return ""
	}

	return strings.Join(fields[1:], " ")
}

func (r Role) DisplayName() string {
	return strings.ReplaceAll(r.Name, nameBreak, " ")
}

func (r Role) IsFemale() bool {
	return strings.HasPrefix(r.DisplayName(), "Little Miss")
}

func (r Role) IsMale() bool {
	return strings.HasPrefix(r.DisplayName(), "Mr.")
}
