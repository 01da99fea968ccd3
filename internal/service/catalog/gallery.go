package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	GENDER_BOTH  = "both"
	GENDER_GIRLS = "girls"
	GENDER_BOYS  = "boys"

	SORT_ROLELIST = "rolelist"
	SORT_ALPHA    = "alpha"
)

// GalleryQuery 是角色画廊的筛选条件
// Archetypes 为 nil 时表示全选
type GalleryQuery struct {
	Archetypes []string
	Gender     string
	SortBy     string
}

type GalleryPage struct {
	Roles  []Role
	Shown  int
	Total  int
	Status string
	// 规范化之后实际生效的筛选条件
	Query GalleryQuery
}

// Normalize 丢弃未知的 archetype，并把非法的性别和排序方式重置为默认值
func (c *Catalog) Normalize(q GalleryQuery) GalleryQuery {
	out := GalleryQuery{
		Gender: GENDER_BOTH,
		SortBy: SORT_ROLELIST,
	}

	switch q.Gender {
	case GENDER_BOTH, GENDER_GIRLS, GENDER_BOYS:
		out.Gender = q.Gender
	}

	switch q.SortBy {
	case SORT_ROLELIST, SORT_ALPHA:
		out.SortBy = q.SortBy
	}

	known := c.Archetypes()
	if q.Archetypes == nil {
		out.Archetypes = known
		return out
	}

	wanted := make(map[string]struct{}, len(q.Archetypes))
	for _, a := range q.Archetypes {
		wanted[a] = struct{}{}
	}

	out.Archetypes = make([]string, 0, len(wanted))
	for _, a := range known {
		if _, ok := wanted[a]; ok {
			out.Archetypes = append(out.Archetypes, a)
		}
	}

	return out
}

func (c *Catalog) Gallery(q GalleryQuery) GalleryPage {
	q = c.Normalize(q)

	included := make(map[string]struct{}, len(q.Archetypes))
	for _, a := range q.Archetypes {
		included[a] = struct{}{}
	}

	roles := make([]Role, 0, len(c.roles))
	for _, role := range c.roles {
		if _, ok := included[role.Archetype]; !ok {
			continue
		}
		if !passGender(role, q.Gender) {
			continue
		}
		roles = append(roles, role)
	}

	if q.SortBy == SORT_ALPHA {
		// Collator 不是并发安全的，每次排序单独创建
		cl := collate.New(language.English)
		sort.SliceStable(roles, func(i, j int) bool {
			a := strings.ToLower(roles[i].DisplayName())
			b := strings.ToLower(roles[j].DisplayName())
			return cl.CompareString(a, b) < 0
		})
	}

	return GalleryPage{
		Roles:  roles,
		Shown:  len(roles),
		Total:  len(c.roles),
		Status: galleryStatus(len(roles), len(c.roles)),
		Query:  q,
	}
}

// QuickSelect 切换某个阵营下的全部 archetype：
// 如果该阵营已经全部选中则全部取消，否则全部选中
func (c *Catalog) QuickSelect(selected []string, alignment string) []string {
	prefix := alignment + " "

	current := make(map[string]bool, len(selected))
	for _, a := range selected {
		current[a] = true
	}

	known := c.Archetypes()

	allSelected := true
	for _, a := range known {
		if strings.HasPrefix(a, prefix) && !current[a] {
			allSelected = false
			break
		}
	}

	for _, a := range known {
		if strings.HasPrefix(a, prefix) {
			current[a] = !allSelected
		}
	}

	out := make([]string, 0, len(known))
	for _, a := range known {
		if current[a] {
			out = append(out, a)
		}
	}

	return out
}

func passGender(role Role, gender string) bool {
	switch gender {
	case GENDER_GIRLS:
		return role.IsFemale()
	case GENDER_BOYS:
		return role.IsMale()
	default:
		return true
	}
}

func galleryStatus(shown, total int) string {
	if shown == 0 {
		return "No roles match your filters."
	}

	return fmt.Sprintf("%d/%d roles displayed.", shown, total)
}
