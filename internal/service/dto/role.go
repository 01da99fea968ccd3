package dto

import "lmm-be/internal/service/catalog"

type GalleryRequest struct {
	// nil 表示全选
	Archetypes []string `json:"archetypes"`
	Gender     string   `json:"gender"`
	SortBy     string   `json:"sort_by"`
}

type GalleryResponse struct {
	Roles      []catalog.Role `json:"roles"`
	Shown      int            `json:"shown"`
	Total      int            `json:"total"`
	Status     string         `json:"status"`
	Archetypes []string       `json:"archetypes"`
	Gender     string         `json:"gender"`
	SortBy     string         `json:"sort_by"`
}

type ArchetypesResponse struct {
	Archetypes []string `json:"archetypes"`
}

type SearchResponse struct {
	Query string          `json:"query"`
	Match catalog.RoleRef `json:"match"`
}
