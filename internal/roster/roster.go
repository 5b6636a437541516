// Package roster holds the catalog of draftable champions. The catalog
// is read-only input to the draft: the engine only ever sees ids.
package roster

type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleBot     Role = "bot"
	RoleSupport Role = "support"
)

type Champion struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Image string `json:"img"`
}

type Catalog struct {
	list []Champion
	byID map[string]Champion
}

func NewCatalog(champions []Champion) *Catalog {
	c := &Catalog{
		list: append([]Champion(nil), champions...),
		byID: make(map[string]Champion, len(champions)),
	}
	for _, ch := range c.list {
		c.byID[ch.ID] = ch
	}
	return c
}

func (c *Catalog) Get(id string) (Champion, bool) {
	ch, ok := c.byID[id]
	return ch, ok
}

func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) Len() int { return len(c.list) }

// All returns the catalog in its original order.
func (c *Catalog) All() []Champion {
	return append([]Champion(nil), c.list...)
}

// ByRole filters the catalog by role tag, preserving order.
func (c *Catalog) ByRole(role Role) []Champion {
	var out []Champion
	for _, ch := range c.list {
		if ch.Role == role {
			out = append(out, ch)
		}
	}
	return out
}
