package gosrc

import (
	"cmp"
	"go/token"
	"slices"

	"github.com/sirkon/rbtree"
)

// Index finds annotated declarations by source position.
type Index struct {
	tree *rbtree.Tree[*indexSpan]
}

// NewIndex indexes targets by their [Start, End] spans.
func NewIndex(targets ...Target) *Index {
	// Outer spans go first so that every insertion either lands beside disjoint spans
	// or descends into a container.
	ordered := make([]*Target, len(targets))
	for i := range targets {
		ordered[i] = &targets[i]
	}
	slices.SortStableFunc(ordered, func(a, b *Target) int {
		return cmp.Compare(b.End-b.Start, a.End-a.Start)
	})

	idx := &Index{tree: rbtree.New[*indexSpan]()}
	for _, t := range ordered {
		idx.add(t)
	}

	return idx
}

// add registers a target. Spans of targets must either be disjoint or nested, and a
// container must be added before the spans it contains: a span overlapping several
// existing siblings is not supported.
func (idx *Index) add(t *Target) {
	attachInto(idx.tree, &indexSpan{start: t.Start, end: t.End, target: t})
}

// At returns the innermost target whose span covers pos, nil if there is none.
func (idx *Index) At(pos token.Pos) *Target {
	key := &indexSpan{start: pos, end: pos}
	res := idx.tree.Search(key)
	if res == nil {
		return nil
	}

	return descendSearch(res, pos)
}

// indexSpan stores a target span and a nested tree for spans it contains.
type indexSpan struct {
	start token.Pos
	end   token.Pos

	target   *Target
	children *rbtree.Tree[*indexSpan]
}

// Cmp orders spans as "disjoint by position": overlapping spans compare equal, the
// caller resolves overlaps into containment.
func (n *indexSpan) Cmp(other *indexSpan) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *indexSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts s into t:
//   - s becomes a sibling when nothing overlaps it;
//   - an overlapping node r contained by s is overwritten in place with s and then
//     reattached as a child of s;
//   - s descends into r's children when r contains s.
func attachInto(t *rbtree.Tree[*indexSpan], s *indexSpan) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	if contains(s, r) {
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*indexSpan]()
		}
		attachInto(r.children, &old)
		return
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = rbtree.New[*indexSpan]()
		}
		attachInto(r.children, s)
		return
	}

	panic("attachInto: partial-overlap spans are not supported")
}

func descendSearch(n *indexSpan, pos token.Pos) *Target {
	if n == nil {
		return nil
	}
	if n.children == nil {
		return n.target
	}

	key := &indexSpan{start: pos, end: pos}
	child := n.children.Search(key)
	if child == nil {
		return n.target
	}
	if v := descendSearch(child, pos); v != nil {
		return v
	}

	return n.target
}
