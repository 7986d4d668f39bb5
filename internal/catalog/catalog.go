// Package catalog provides the immutable role catalog: role names mapped to
// ordered skill lists, where the order is the recommended learning path.
package catalog

import "github.com/jonathan/resume-matcher/internal/types"

// Role is a single catalog entry.
type Role struct {
	Name   string   `json:"name" validate:"required"`
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
}

// Catalog is an ordered, read-only set of roles. It is built once by Load or New
// and shared across requests without locking; accessors return copies.
type Catalog struct {
	roles []Role
	index map[string]int
}

// New builds a catalog from roles after validating them.
func New(roles []Role) (*Catalog, error) {
	if err := validateRoles(roles); err != nil {
		return nil, err
	}

	c := &Catalog{
		roles: make([]Role, len(roles)),
		index: make(map[string]int, len(roles)),
	}
	for i, r := range roles {
		c.roles[i] = Role{Name: r.Name, Skills: append([]string(nil), r.Skills...)}
		c.index[r.Name] = i
	}
	return c, nil
}

// Len returns the number of roles.
func (c *Catalog) Len() int {
	return len(c.roles)
}

// Names returns role names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.roles))
	for i, r := range c.roles {
		names[i] = r.Name
	}
	return names
}

// Roles returns a copy of all roles in catalog order.
func (c *Catalog) Roles() []Role {
	out := make([]Role, len(c.roles))
	for i, r := range c.roles {
		out[i] = Role{Name: r.Name, Skills: append([]string(nil), r.Skills...)}
	}
	return out
}

// Summaries returns the roles as listing entries in catalog order.
func (c *Catalog) Summaries() []types.RoleSummary {
	out := make([]types.RoleSummary, len(c.roles))
	for i, r := range c.roles {
		out[i] = types.RoleSummary{Name: r.Name, Skills: append([]string(nil), r.Skills...)}
	}
	return out
}

// Skills returns the ordered skill list for a role.
func (c *Catalog) Skills(name string) ([]string, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), c.roles[i].Skills...), true
}

// Has reports whether the catalog contains a role.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}
