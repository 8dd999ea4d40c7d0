package domain

import (
	"iter"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.trai.ch/zerr"
)

// TargetAll is the explicit alias selecting every category.
const TargetAll = "all"

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion for an unknown target.
const maxSuggestDistance = 2

// Registry is the ordered set of dependency categories Glue knows about.
type Registry struct {
	categories []Category
	byDep      map[Name]Dependency
	byCategory map[Name]Category
}

// NewRegistry builds a Registry from categories, validating that dependency
// and category names are unique across the whole registry.
func NewRegistry(categories []Category) (*Registry, error) {
	r := &Registry{
		categories: categories,
		byDep:      make(map[Name]Dependency),
		byCategory: make(map[Name]Category),
	}

	for _, cat := range categories {
		key := foldName(cat.Name)
		if _, exists := r.byCategory[key]; exists {
			return nil, zerr.With(zerr.Wrap(ErrRegistryInvalid, "duplicate category"), "category", cat.Name.String())
		}
		r.byCategory[key] = cat

		for _, dep := range cat.Dependencies {
			key := foldName(dep.Name)
			if _, exists := r.byDep[key]; exists {
				return nil, zerr.With(zerr.Wrap(ErrDuplicateDependency, "registered twice"), "dependency", dep.Name.String())
			}
			r.byDep[key] = dep
		}
	}

	return r, nil
}

// Walk returns an iterator over the categories in registry order.
func (r *Registry) Walk() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, cat := range r.categories {
			if !yield(cat) {
				return
			}
		}
	}
}

// Len returns the total number of registered dependencies.
func (r *Registry) Len() int {
	return len(r.byDep)
}

// Category looks up a category by name, case-insensitively.
func (r *Registry) Category(name Name) (Category, bool) {
	cat, ok := r.byCategory[foldName(name)]
	return cat, ok
}

// Dependency looks up a dependency by name, case-insensitively.
func (r *Registry) Dependency(name Name) (Dependency, bool) {
	dep, ok := r.byDep[foldName(name)]
	return dep, ok
}

// Required returns the categories Glue cannot start without.
func (r *Registry) Required() []Category {
	var required []Category
	for _, cat := range r.categories {
		if cat.Required {
			required = append(required, cat)
		}
	}
	return required
}

// Selection is the result of resolving one user-supplied target.
type Selection struct {
	// Category is the category the selection belongs to.
	Category Category

	// Deps are the selected members of the category, in registry order.
	Deps []Dependency

	// Whole reports whether the user selected the category as a whole
	// rather than naming members explicitly. Category policy only applies
	// to whole-category selections.
	Whole bool
}

// Resolve expands user-supplied targets into per-category selections.
// Targets may be category names or dependency names, matched
// case-insensitively; the empty target list and the "all" alias both select
// every category. Unknown targets produce ErrUnknownTarget annotated with a
// close-match suggestion when one exists.
func (r *Registry) Resolve(targets []string) ([]Selection, error) {
	if len(targets) == 0 {
		return r.selectAll(), nil
	}

	// Accumulate per category to keep registry order and merge duplicate targets.
	picked := make(map[Name]*Selection)
	for _, raw := range targets {
		target := strings.ToLower(strings.TrimSpace(raw))
		if target == "" {
			continue
		}
		if target == TargetAll {
			return r.selectAll(), nil
		}

		name := NewName(target)
		if cat, ok := r.byCategory[name]; ok {
			sel := picked[cat.Name]
			if sel == nil {
				sel = &Selection{Category: cat}
				picked[cat.Name] = sel
			}
			sel.Whole = true
			continue
		}

		if dep, ok := r.byDep[name]; ok {
			cat := r.categoryOf(dep.Name)
			sel := picked[cat.Name]
			if sel == nil {
				sel = &Selection{Category: cat}
				picked[cat.Name] = sel
			}
			sel.Deps = append(sel.Deps, dep)
			continue
		}

		err := zerr.With(zerr.Wrap(ErrUnknownTarget, "failed to resolve target"), "target", raw)
		if suggestion := r.Suggest(target); suggestion != "" {
			err = zerr.With(err, "did_you_mean", suggestion)
		}
		return nil, err
	}

	// Whole-category selections cover all members.
	selections := make([]Selection, 0, len(picked))
	for _, cat := range r.categories {
		sel, ok := picked[cat.Name]
		if !ok {
			continue
		}
		if sel.Whole {
			sel.Deps = cat.Dependencies
		}
		selections = append(selections, *sel)
	}
	return selections, nil
}

// Suggest returns the registered category or dependency name closest to the
// given target, or the empty string when nothing is close enough.
func (r *Registry) Suggest(target string) string {
	target = strings.ToLower(target)
	best := ""
	bestDist := maxSuggestDistance + 1

	consider := func(candidate string) {
		if d := levenshtein.ComputeDistance(target, strings.ToLower(candidate)); d < bestDist {
			best = candidate
			bestDist = d
		}
	}

	for _, cat := range r.categories {
		consider(cat.Name.String())
		for _, dep := range cat.Dependencies {
			consider(dep.Name.String())
		}
	}
	return best
}

func (r *Registry) selectAll() []Selection {
	selections := make([]Selection, 0, len(r.categories))
	for _, cat := range r.categories {
		selections = append(selections, Selection{
			Category: cat,
			Deps:     cat.Dependencies,
			Whole:    true,
		})
	}
	return selections
}

// foldName normalizes a name for lookup. Registry files may declare
// mixed-case names (PyQt5); targeting stays case-insensitive.
func foldName(n Name) Name {
	return NewName(strings.ToLower(n.String()))
}

func (r *Registry) categoryOf(dep Name) Category {
	for _, cat := range r.categories {
		for _, d := range cat.Dependencies {
			if d.Name == dep {
				return cat
			}
		}
	}
	return Category{}
}
