package dto

import "lmm-be/internal/service/catalog"

type AssignRequest struct {
	// 每行一个槽位，例如 "Town Investigative"
	RoleList string `json:"role_list"`
	// 每行一个玩家名，可以为空
	PlayerList string `json:"player_list"`
	// 为空时使用时间作为种子
	Seed string `json:"seed"`
}

// AssignmentView 中 Role 与 Error 二者必有其一
type AssignmentView struct {
	SlotNumber int           `json:"slot_number"`
	Slot       string        `json:"slot"`
	Player     *string       `json:"player"`
	Role       *catalog.Role `json:"role,omitempty"`
	Error      string        `json:"error,omitempty"`
	ErrorKind  string        `json:"error_kind,omitempty"`
}

type AssignResponse struct {
	RunID         string           `json:"run_id"`
	Seed          string           `json:"seed"`
	Deterministic bool             `json:"deterministic"`
	Assigned      int              `json:"assigned"`
	Failed        int              `json:"failed"`
	Assignments   []AssignmentView `json:"assignments"`
}
