package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog = errors.New("role catalog is empty")
	ErrRoleNotFound = errors.New("role not found")
)

// Catalog 是有序、只读的角色目录
// 随机选择依赖于过滤后的切片顺序，所以必须严格保持加载时的顺序
type Catalog struct {
	roles []Role
	// 从角色 ID 到下标的映射
	index map[int]int
}

func New(roles []Role) (*Catalog, error) {
	if len(roles) == 0 {
		return nil, ErrEmptyCatalog
	}

	index := make(map[int]int, len(roles))
	for i, role := range roles {
		if _, ok := index[role.ID]; ok {
			return nil, fmt.Errorf("duplicate role id %d", role.ID)
		}
		index[role.ID] = i
	}

	copied := make([]Role, len(roles))
	copy(copied, roles)

	return &Catalog{
		roles: copied,
		index: index,
	}, nil
}

// Roles 返回目录的副本，调用方可以随意修改
func (c *Catalog) Roles() []Role {
	roles := make([]Role, len(c.roles))
	copy(roles, c.roles)
	return roles
}

func (c *Catalog) Len() int {
	return len(c.roles)
}

func (c *Catalog) At(i int) Role {
	return c.roles[i]
}

func (c *Catalog) IndexOf(id int) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

func (c *Catalog) ByID(id int) (Role, bool) {
	i, ok := c.index[id]
	if !ok {
		return Role{}, false
	}

	return c.roles[i], true
}

// Archetypes 返回去重后的 archetype 列表，顺序为首次出现的顺序
func (c *Catalog) Archetypes() []string {
	seen := make(map[string]struct{}, len(c.roles))
	archetypes := make([]string, 0)

	for _, role := range c.roles {
		if _, ok := seen[role.Archetype]; ok {
			continue
		}
		seen[role.Archetype] = struct{}{}
		archetypes = append(archetypes, role.Archetype)
	}

	return archetypes
}
