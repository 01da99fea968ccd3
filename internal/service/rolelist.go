package service

import (
	"lmm-be/internal/service/dto"
	"lmm-be/internal/service/rolelist"
)

type RolelistService struct {
	lists *rolelist.Rolelists
}

func NewRolelistService(lists *rolelist.Rolelists) *RolelistService {
	if lists == nil {
		lists = rolelist.Fallback()
	}

	return &RolelistService{lists: lists}
}

func (rs *RolelistService) Overview() dto.RolelistOverviewResponse {
	return dto.RolelistOverviewResponse{
		Min:     rs.lists.Min(),
		Max:     rs.lists.Max(),
		Default: rs.lists.Default(),
		Counts:  rs.lists.Counts(),
	}
}

// Explore 返回指定人数的列表，人数越界时会被限制到可用范围内
func (rs *RolelistService) Explore(playerCount int) dto.RolelistResponse {
	n := rs.lists.Clamp(playerCount)
	slots := rs.lists.Get(n)
	counts := rolelist.CountAlignments(slots)
	town, evil := rolelist.Partition(slots)

	return dto.RolelistResponse{
		PlayerCount: n,
		Slots:       slots,
		Counts:      counts,
		Summary:     counts.Summary(),
		Town:        town,
		Evil:        evil,
		Text:        rs.lists.Text(n),
		CanShrink:   n > rs.lists.Min(),
		CanGrow:     n < rs.lists.Max(),
	}
}
