package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sirkon/reuseid/internal/basekind"
)

func TestCheckerCheck(t *testing.T) {
	tests := []struct {
		name   string
		decl   Declaration
		reason Reason
	}{
		{
			name:   "table view cell",
			decl:   Declaration{Name: "MyCell", Kind: DeclKindClass, BaseTypes: []string{"UITableViewCell"}},
			reason: ReasonNone,
		},
		{
			name:   "reusable view after protocols",
			decl:   Declaration{Name: "Header", Kind: DeclKindClass, BaseTypes: []string{"Configurable", "UICollectionReusableView"}},
			reason: ReasonNone,
		},
		{
			name:   "value type without bases",
			decl:   Declaration{Name: "MyCell", Kind: DeclKindValueType},
			reason: ReasonNotClassDeclaration,
		},
		{
			name:   "value type with a valid base still fails the kind check",
			decl:   Declaration{Name: "MyCell", Kind: DeclKindValueType, BaseTypes: []string{"UITableViewCell"}},
			reason: ReasonNotClassDeclaration,
		},
		{
			name:   "protocol",
			decl:   Declaration{Name: "Cell", Kind: DeclKindProtocol},
			reason: ReasonNotClassDeclaration,
		},
		{
			name:   "extension",
			decl:   Declaration{Name: "MyCell", Kind: DeclKindExtension, BaseTypes: []string{"UITableViewCell"}},
			reason: ReasonNotClassDeclaration,
		},
		{
			name:   "zero kind",
			decl:   Declaration{Name: "MyCell"},
			reason: ReasonNotClassDeclaration,
		},
		{
			name:   "class without inheritance clause",
			decl:   Declaration{Name: "MyCell", Kind: DeclKindClass},
			reason: ReasonInvalidBaseType,
		},
		{
			name:   "class with disallowed bases only",
			decl:   Declaration{Name: "MyView", Kind: DeclKindClass, BaseTypes: []string{"UIView", "UIKit.UITableViewCell"}},
			reason: ReasonInvalidBaseType,
		},
	}

	checker := NewChecker(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := checker.Check(tt.decl)
			assert.Equal(t, tt.reason, v.Reason)
			assert.Equal(t, tt.reason == ReasonNone, v.Eligible())
			if v.Eligible() {
				assert.Equal(t, tt.decl.Name, v.Name)
			}
		})
	}
}

func TestCheckerCustomCatalog(t *testing.T) {
	catalog, err := basekind.NewCatalog(basekind.Kind{Framework: "AppKit", Name: "NSCollectionViewItem"})
	assert.NoError(t, err)

	checker := NewChecker(catalog)

	v := checker.Check(Declaration{Name: "Item", Kind: DeclKindClass, BaseTypes: []string{"NSCollectionViewItem"}})
	assert.True(t, v.Eligible())

	v = checker.Check(Declaration{Name: "MyCell", Kind: DeclKindClass, BaseTypes: []string{"UITableViewCell"}})
	assert.Equal(t, ReasonInvalidBaseType, v.Reason)
}
