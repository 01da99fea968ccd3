package assign

import (
	"regexp"
	"strings"

	"lmm-be/internal/service/catalog"
)

// 不区分大小写地匹配所有 "non-" 前缀
var negationPattern = regexp.MustCompile(`(?i)non-`)

// SlotSpec 是从角色列表中一行解析出的槽位
type SlotSpec struct {
	Text      string
	Alignment string
	// 阵营之后的剩余部分，例如 "Any"、"Non-Investigative/Killing"
	Query string
}

func ParseSlot(text string) (SlotSpec, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return SlotSpec{}, &SlotError{Kind: InvalidSlotFormat, Slot: text}
	}

	return SlotSpec{
		Text:      text,
		Alignment: fields[0],
		Query:     strings.Join(fields[1:], " "),
	}, nil
}

// Resolve 为一个槽位挑选具体角色
// 成功时恰好消耗一次 src.Next()，失败时不消耗
func Resolve(roles []catalog.Role, slot string, src Source) (catalog.Role, error) {
	spec, err := ParseSlot(slot)
	if err != nil {
		return catalog.Role{}, err
	}

	candidates, err := Eligible(roles, spec)
	if err != nil {
		return catalog.Role{}, err
	}

	return candidates[pick(src, len(candidates))], nil
}

// Eligible 返回满足槽位要求的角色，保持目录原有顺序
func Eligible(roles []catalog.Role, spec SlotSpec) ([]catalog.Role, error) {
	alignment := strings.ToLower(spec.Alignment)

	aligned := make([]catalog.Role, 0, len(roles))
	for _, role := range roles {
		if strings.HasPrefix(strings.ToLower(role.Archetype), alignment) {
			aligned = append(aligned, role)
		}
	}

	if len(aligned) == 0 {
		return nil, &SlotError{
			Kind:      NoRolesForAlignment,
			Slot:      spec.Text,
			Alignment: spec.Alignment,
		}
	}

	query := strings.ToLower(spec.Query)
	if query == "any" {
		return aligned, nil
	}

	negated := strings.Contains(query, "non-")
	terms := archetypeTerms(negationPattern.ReplaceAllString(spec.Query, ""))

	matching := make([]catalog.Role, 0, len(aligned))
	for _, role := range aligned {
		if matchesAny(role.ArchetypeRemainder(), terms) != negated {
			matching = append(matching, role)
		}
	}

	if len(matching) == 0 {
		return nil, &SlotError{
			Kind:      NoRolesMatching,
			Slot:      spec.Text,
			Alignment: spec.Alignment,
		}
	}

	return matching, nil
}

func archetypeTerms(query string) []string {
	parts := strings.Split(query, "/")

	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		terms = append(terms, strings.ToLower(part))
	}

	return terms
}

func matchesAny(remainder string, terms []string) bool {
	remainder = strings.ToLower(remainder)
	for _, term := range terms {
		if strings.HasPrefix(remainder, term) {
			return true
		}
	}

	return false
}
