package roster

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	seen := make(map[string]bool, c.Len())
	for _, ch := range c.All() {
		if ch.ID == "" || ch.Name == "" || ch.Image == "" {
			t.Fatalf("incomplete champion entry: %+v", ch)
		}
		if seen[ch.ID] {
			t.Fatalf("duplicate champion id %q", ch.ID)
		}
		seen[ch.ID] = true
	}
}

func TestCatalogLookups(t *testing.T) {
	c := NewCatalog([]Champion{
		{ID: "ahri", Name: "Ahri", Role: RoleMid},
		{ID: "jinx", Name: "Jinx", Role: RoleBot},
		{ID: "zed", Name: "Zed", Role: RoleMid},
	})

	if !c.Contains("ahri") || c.Contains("teemo") {
		t.Fatal("Contains mismatch")
	}

	ch, ok := c.Get("jinx")
	if !ok || ch.Name != "Jinx" {
		t.Fatalf("Get(jinx) = %+v, %v", ch, ok)
	}

	mids := c.ByRole(RoleMid)
	if len(mids) != 2 || mids[0].ID != "ahri" || mids[1].ID != "zed" {
		t.Fatalf("ByRole(mid) = %+v", mids)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := NewCatalog([]Champion{{ID: "ahri", Name: "Ahri"}})

	all := c.All()
	all[0].ID = "mutated"
	if !c.Contains("ahri") {
		t.Fatal("mutating All() result must not affect the catalog")
	}
	if got := c.All()[0].ID; got != "ahri" {
		t.Fatalf("catalog entry mutated: %q", got)
	}
}
