// Package iab holds the IAB Ad Product Taxonomy 2.0 and the deterministic
// keyword matcher built on top of it. All tables are fixed at compile time
// and indexed once at init, so every lookup is safe for concurrent use.
package iab

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the IAB Ad Product Taxonomy version the tables correspond to.
const Version = "2.0"

const codePrefix = "IAB-AP-"

// Category is a single node in the taxonomy tree. Parent is 0 for tier 1
// categories; the tables guarantee no category uses id 0.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Tier   int    `json:"tier"`
	Parent int    `json:"parent,omitempty"`
}

var categoryByID map[int]Category

func init() {
	categoryByID = make(map[int]Category, len(taxonomy))
	for _, c := range taxonomy {
		if _, dup := categoryByID[c.ID]; dup {
			panic(fmt.Sprintf("iab: duplicate category id %d", c.ID))
		}
		categoryByID[c.ID] = c
	}
	// Validate the tier/parent invariant once here so lookups never have to.
	for _, c := range taxonomy {
		if c.Tier == 1 {
			if c.Parent != 0 {
				panic(fmt.Sprintf("iab: tier 1 category %d has parent %d", c.ID, c.Parent))
			}
			continue
		}
		parent, ok := categoryByID[c.Parent]
		if !ok {
			panic(fmt.Sprintf("iab: category %d references unknown parent %d", c.ID, c.Parent))
		}
		if parent.Tier != c.Tier-1 {
			panic(fmt.Sprintf("iab: category %d (tier %d) has parent %d of tier %d", c.ID, c.Tier, parent.ID, parent.Tier))
		}
	}
}

// Code formats a category id as an IAB-AP code. It does not check that the
// id exists; use IsValidCategory for that.
func Code(id int) string {
	return codePrefix + strconv.Itoa(id)
}

// IDFromCode parses an IAB-AP code back to a category id. Returns false for
// anything that isn't a well-formed code.
func IDFromCode(code string) (int, bool) {
	if !strings.HasPrefix(code, codePrefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(code, codePrefix))
	if err != nil {
		return 0, false
	}
	return id, true
}

// CategoryByID looks up a category by id.
func CategoryByID(id int) (Category, bool) {
	c, ok := categoryByID[id]
	return c, ok
}

// Tier1Categories returns all top-level categories in table order.
func Tier1Categories() []Category {
	var out []Category
	for _, c := range taxonomy {
		if c.Tier == 1 {
			out = append(out, c)
		}
	}
	return out
}

// Children returns the direct children of a category in table order.
func Children(parentID int) []Category {
	var out []Category
	for _, c := range taxonomy {
		if c.Parent == parentID && c.Parent != 0 {
			out = append(out, c)
		}
	}
	return out
}

// Path returns the categories from the tier 1 ancestor down to id, or nil
// if the id is unknown. The init-time invariant check guarantees the walk
// terminates within three steps.
func Path(id int) []Category {
	c, ok := categoryByID[id]
	if !ok {
		return nil
	}
	var path []Category
	for {
		path = append([]Category{c}, path...)
		if c.Parent == 0 {
			return path
		}
		c = categoryByID[c.Parent]
	}
}

// Label returns the full breadcrumb label for a category, e.g.
// "Consumer Electronics > Wearables > Smartwatches". Empty for unknown ids.
func Label(id int) string {
	path := Path(id)
	names := make([]string, len(path))
	for i, c := range path {
		names[i] = c.Name
	}
	return strings.Join(names, " > ")
}

// Tier1Ancestor returns the top-level ancestor of a category (the category
// itself when it is tier 1).
func Tier1Ancestor(id int) (Category, bool) {
	path := Path(id)
	if len(path) == 0 {
		return Category{}, false
	}
	return path[0], true
}

// IsValidCategory reports whether the input names an existing category. It
// accepts a plain numeric string or an IAB-AP code and never errors on
// malformed input.
func IsValidCategory(idOrCode string) bool {
	id, ok := IDFromCode(idOrCode)
	if !ok {
		var err error
		id, err = strconv.Atoi(strings.TrimSpace(idOrCode))
		if err != nil {
			return false
		}
	}
	_, ok = categoryByID[id]
	return ok
}

// IsValidCategoryID reports whether a numeric category id exists.
func IsValidCategoryID(id int) bool {
	_, ok := categoryByID[id]
	return ok
}
