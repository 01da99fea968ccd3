package service

import (
	"errors"
	"strings"

	"lmm-be/internal/service/catalog"
	"lmm-be/internal/service/dto"

	"github.com/schollz/closestmatch"
	"go.uber.org/zap"
)

var (
	ErrEmptyQuery = errors.New("search query must not be empty")
	ErrNoMatch    = errors.New("no role resembles the query")
)

// RoleService 提供角色画廊、详情页和搜索
// 目录在启动时加载，之后只读，可以被并发访问
type RoleService struct {
	catalog *catalog.Catalog
	groups  catalog.InvestigativeGroups

	// 小写展示名到角色的映射，供模糊搜索使用
	byName  map[string]catalog.Role
	matcher *closestmatch.ClosestMatch
}

func NewRoleService(c *catalog.Catalog, groups catalog.InvestigativeGroups) *RoleService {
	if len(groups.Groups) == 0 {
		groups.Groups = catalog.DefaultInvestigativeGroups().Groups
	}
	if groups.InvestigatorID == 0 {
		groups.InvestigatorID = catalog.DefaultInvestigativeGroups().InvestigatorID
	}

	byName := make(map[string]catalog.Role, c.Len())
	names := make([]string, 0, c.Len())

	for _, role := range c.Roles() {
		name := strings.ToLower(role.DisplayName())
		if _, ok := byName[name]; ok {
			continue
		}
		byName[name] = role
		names = append(names, name)
	}

	return &RoleService{
		catalog: c,
		groups:  groups,
		byName:  byName,
		matcher: closestmatch.New(names, []int{2, 3}),
	}
}

func (rs *RoleService) Gallery(req dto.GalleryRequest) dto.GalleryResponse {
	page := rs.catalog.Gallery(catalog.GalleryQuery{
		Archetypes: req.Archetypes,
		Gender:     req.Gender,
		SortBy:     req.SortBy,
	})

	return dto.GalleryResponse{
		Roles:      page.Roles,
		Shown:      page.Shown,
		Total:      page.Total,
		Status:     page.Status,
		Archetypes: page.Query.Archetypes,
		Gender:     page.Query.Gender,
		SortBy:     page.Query.SortBy,
	}
}

func (rs *RoleService) Archetypes() dto.ArchetypesResponse {
	return dto.ArchetypesResponse{Archetypes: rs.catalog.Archetypes()}
}

// ToggleAlignment 对应画廊上的阵营快捷按钮
func (rs *RoleService) ToggleAlignment(selected []string, alignment string) dto.ArchetypesResponse {
	return dto.ArchetypesResponse{Archetypes: rs.catalog.QuickSelect(selected, alignment)}
}

func (rs *RoleService) Detail(id int) (catalog.RoleDetail, error) {
	detail, err := rs.catalog.Detail(id, rs.groups)
	if err != nil {
		zap.L().Debug("查询角色详情失败", zap.Int("role_id", id), zap.Error(err))
		return catalog.RoleDetail{}, err
	}

	return detail, nil
}

// Search 先按子串精确查找，找不到再用 closestmatch 给出最接近的角色
func (rs *RoleService) Search(query string) (dto.SearchResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return dto.SearchResponse{}, ErrEmptyQuery
	}

	for _, role := range rs.catalog.Roles() {
		if strings.Contains(strings.ToLower(role.DisplayName()), q) {
			return searchResponse(query, role), nil
		}
	}

	best := rs.matcher.Closest(q)
	role, ok := rs.byName[best]
	if !ok {
		return dto.SearchResponse{}, ErrNoMatch
	}

	zap.L().Debug(
		"角色搜索使用模糊匹配",
		zap.String("query", query),
		zap.String("match", role.DisplayName()),
	)

	return searchResponse(query, role), nil
}

func searchResponse(query string, role catalog.Role) dto.SearchResponse {
	return dto.SearchResponse{
		Query: query,
		Match: catalog.RoleRef{ID: role.ID, Name: role.DisplayName()},
	}
}
