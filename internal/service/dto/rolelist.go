package dto

import "lmm-be/internal/service/rolelist"

type RolelistOverviewResponse struct {
	Min     int   `json:"min"`
	Max     int   `json:"max"`
	Default int   `json:"default"`
	Counts  []int `json:"counts"`
}

type RolelistResponse struct {
	PlayerCount int                      `json:"player_count"`
	Slots       []string                 `json:"slots"`
	Counts      rolelist.AlignmentCounts `json:"counts"`
	Summary     string                   `json:"summary"`
	Town        []rolelist.Slot          `json:"town"`
	Evil        []rolelist.Slot          `json:"evil"`
	// 复制到剪贴板的文本
	Text      string `json:"text"`
	CanShrink bool   `json:"can_shrink"`
	CanGrow   bool   `json:"can_grow"`
}
