package catalog

import (
	"regexp"
	"strings"
)

// 能力描述里的图标标记，例如 "<night>"
var abilityTagPattern = regexp.MustCompile(`<([^>]+)>`)

// InvestigativeGroups 描述调查类角色会得到的结果分组
// 同一组内的角色在调查时无法互相区分
type InvestigativeGroups struct {
	InvestigatorID int
	Groups         [][]int
}

func DefaultInvestigativeGroups() InvestigativeGroups {
	return InvestigativeGroups{
		InvestigatorID: 53,
		Groups: [][]int{
			{46, 47, 68, 57, 90},
			{53, 59, 42, 4, 24},
			{9, 61, 76, 58, 39},
			{45, 10, 35, 91, 87},
			{29, 7, 14, 78, 77},
			{25, 18, 63, 92, 3},
			{65, 27, 38, 80, 85},
			{69, 95, 93, 12, 40},
			{62, 55, 81, 75, 23},
			{94, 13, 17, 1, 21},
			{49, 74, 22, 36, 72},
			{67, 20, 15, 37, 60},
		},
	}
}

type Ability struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

type RoleRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type InvestigativeResult struct {
	Investigator RoleRef   `json:"investigator"`
	Roles        []RoleRef `json:"roles"`
}

// RoleDetail 是单个角色详情页需要的全部数据
type RoleDetail struct {
	Role           Role                 `json:"role"`
	Index          int                  `json:"index"`
	DisplayName    string               `json:"display_name"`
	Female         bool                 `json:"female"`
	Alignment      string               `json:"alignment"`
	ArchetypeLines []string             `json:"archetype_lines"`
	Abilities      []Ability            `json:"abilities"`
	PrevID         int                  `json:"prev_id"`
	NextID         int                  `json:"next_id"`
	Investigative  *InvestigativeResult `json:"investigative,omitempty"`
}

func (c *Catalog) Detail(id int, groups InvestigativeGroups) (RoleDetail, error) {
	i, ok := c.index[id]
	if !ok {
		return RoleDetail{}, ErrRoleNotFound
	}

	role := c.roles[i]

	// 前后翻页首尾相接
	prev := i - 1
	if prev < 0 {
		prev = len(c.roles) - 1
	}
	next := i + 1
	if next >= len(c.roles) {
		next = 0
	}

	abilities := role.FullAbilities
	if len(abilities) == 0 {
		abilities = role.Abilities
	}

	parsed := make([]Ability, 0, len(abilities))
	for _, a := range abilities {
		parsed = append(parsed, ParseAbility(a))
	}

	alignment, rest, found := strings.Cut(role.Archetype, " ")
	lines := []string{alignment}
	if found {
		lines = append(lines, rest)
	}

	return RoleDetail{
		Role:           role,
		Index:          i,
		DisplayName:    role.DisplayName(),
		Female:         role.IsFemale(),
		Alignment:      strings.ToLower(alignment),
		ArchetypeLines: lines,
		Abilities:      parsed,
		PrevID:         c.roles[prev].ID,
		NextID:         c.roles[next].ID,
		Investigative:  c.investigativeResult(role.ID, groups),
	}, nil
}

// ParseAbility 提取能力描述中的 <tag> 图标标记，并返回去掉标记后的文本
func ParseAbility(ability string) Ability {
	tags := make([]string, 0)
	for _, m := range abilityTagPattern.FindAllStringSubmatch(ability, -1) {
		tags = append(tags, m[1])
	}

	return Ability{
		Text: strings.TrimSpace(abilityTagPattern.ReplaceAllString(ability, "")),
		Tags: tags,
	}
}

func (c *Catalog) investigativeResult(id int, groups InvestigativeGroups) *InvestigativeResult {
	var group []int
	for _, g := range groups.Groups {
		for _, member := range g {
			if member == id {
				group = g
				break
			}
		}
		if group != nil {
			break
		}
	}

	if group == nil {
		return nil
	}

	// 结果包含角色自身，与调查者实际看到的列表一致
	refs := make([]RoleRef, 0, len(group))
	for _, member := range group {
		role, ok := c.ByID(member)
		if !ok {
			continue
		}
		refs = append(refs, RoleRef{ID: role.ID, Name: role.DisplayName()})
	}

	investigator := RoleRef{ID: groups.InvestigatorID, Name: "Investigator"}
	if role, ok := c.ByID(groups.InvestigatorID); ok {
		investigator.Name = role.DisplayName()
	}

	return &InvestigativeResult{
		Investigator: investigator,
		Roles:        refs,
	}
}
