package rolelist

import (
	"fmt"
	"strings"
)

const (
	CLASS_TOWN    = "town-role"
	CLASS_MAFIA   = "mafia-role"
	CLASS_NEUTRAL = "neutral-role"
)

type AlignmentCounts struct {
	Town    int `json:"town"`
	Mafia   int `json:"mafia"`
	Neutral int `json:"neutral"`
}

// Summary 形如 "5 Town, 2 Mafia, 1 Neutral"，数量为 0 的阵营不出现
func (c AlignmentCounts) Summary() string {
	parts := make([]string, 0, 3)

	if c.Town > 0 {
		parts = append(parts, fmt.Sprintf("%d Town", c.Town))
	}
	if c.Mafia > 0 {
		parts = append(parts, fmt.Sprintf("%d Mafia", c.Mafia))
	}
	if c.Neutral > 0 {
		parts = append(parts, fmt.Sprintf("%d Neutral", c.Neutral))
	}

	return strings.Join(parts, ", ")
}

type Slot struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

func CountAlignments(slots []string) AlignmentCounts {
	var counts AlignmentCounts

	for _, slot := range slots {
		switch classify(slot) {
		case CLASS_TOWN:
			counts.Town++
		case CLASS_MAFIA:
			counts.Mafia++
		case CLASS_NEUTRAL:
			counts.Neutral++
		}
	}

	return counts
}

// Partition 把列表分成好人一侧和坏人一侧（黑手党与中立）
// 无法识别阵营的槽位被丢弃
func Partition(slots []string) (town, evil []Slot) {
	town = make([]Slot, 0)
	evil = make([]Slot, 0)

	for _, slot := range slots {
		class := classify(slot)
		switch class {
		case CLASS_TOWN:
			town = append(town, Slot{Text: slot, Class: class})
		case CLASS_MAFIA, CLASS_NEUTRAL:
			evil = append(evil, Slot{Text: slot, Class: class})
		}
	}

	return town, evil
}

func classify(slot string) string {
	lower := strings.ToLower(slot)

	switch {
	case strings.HasPrefix(lower, "town"):
		return CLASS_TOWN
	case strings.HasPrefix(lower, "mafia"):
		return CLASS_MAFIA
	case strings.HasPrefix(lower, "neutral"):
		return CLASS_NEUTRAL
	default:
		return ""
	}
}
