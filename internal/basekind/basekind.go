// Package basekind describes the host-framework base kinds a declaration must inherit from
// to be eligible for identifier synthesis.
package basekind

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind is a recognized host-framework base kind. Two kinds are the same kind only when
// both fields are equal.
type Kind struct {
	Framework string
	Name      string
}

func (k Kind) String() string {
	if k.Framework == "" {
		return k.Name
	}

	return k.Framework + "." + k.Name
}

// Framework names and kinds recognized out of the box.
const FrameworkUIKit = "UIKit"

var (
	UITableViewCell          = Kind{Framework: FrameworkUIKit, Name: "UITableViewCell"}
	UICollectionViewCell     = Kind{Framework: FrameworkUIKit, Name: "UICollectionViewCell"}
	UICollectionReusableView = Kind{Framework: FrameworkUIKit, Name: "UICollectionReusableView"}
)

var (
	ErrEmptyName     = errors.New("base kind name is empty")
	ErrDuplicateName = errors.New("duplicate base kind name")
)

// Catalog is an immutable, ordered set of kinds addressed by their declared name.
type Catalog struct {
	kinds  []Kind
	byName map[string]Kind
}

// NewCatalog builds a catalog. Names must be non-empty and unique across frameworks since
// declarations refer to base types by name only.
func NewCatalog(kinds ...Kind) (*Catalog, error) {
	c := &Catalog{
		kinds:  make([]Kind, 0, len(kinds)),
		byName: make(map[string]Kind, len(kinds)),
	}

	for _, k := range kinds {
		if strings.TrimSpace(k.Name) == "" {
			return nil, fmt.Errorf("add kind of framework %q: %w", k.Framework, ErrEmptyName)
		}
		if prev, ok := c.byName[k.Name]; ok {
			return nil, fmt.Errorf("add %s, already registered as %s: %w", k, prev, ErrDuplicateName)
		}

		c.kinds = append(c.kinds, k)
		c.byName[k.Name] = k
	}

	return c, nil
}

// Default returns the UIKit reusable view kinds catalog.
func Default() *Catalog {
	c, err := NewCatalog(UITableViewCell, UICollectionViewCell, UICollectionReusableView)
	if err != nil {
		panic(fmt.Errorf("build default catalog: %w", err))
	}

	return c
}

// Lookup returns the kind declared under the given base type name.
func (c *Catalog) Lookup(name string) (Kind, bool) {
	k, ok := c.byName[name]
	return k, ok
}

// Match returns the first name from names that is a recognized kind.
func (c *Catalog) Match(names []string) (Kind, bool) {
	for _, name := range names {
		if k, ok := c.Lookup(name); ok {
			return k, true
		}
	}

	return Kind{}, false
}

// Kinds returns a copy of catalog kinds in registration order.
func (c *Catalog) Kinds() []Kind {
	return slices.Clone(c.kinds)
}

// Len returns the number of kinds.
func (c *Catalog) Len() int {
	return len(c.kinds)
}
