package domain

// ProbeResult is the outcome of probing one dependency in the interpreter.
type ProbeResult struct {
	// Installed reports whether the module imported successfully.
	Installed bool `json:"installed"`

	// Version is the detected version string, empty when unknown.
	Version string `json:"version,omitempty"`

	// Detail carries the import error message for missing dependencies.
	Detail string `json:"detail,omitempty"`
}

// Report zips the registry with probe results, preserving category order.
type Report struct {
	registry *Registry
	results  map[Name]ProbeResult
}

// NewReport builds a Report from a registry and per-dependency probe results.
// Dependencies absent from results are treated as not installed.
func NewReport(registry *Registry, results map[Name]ProbeResult) *Report {
	if results == nil {
		results = make(map[Name]ProbeResult)
	}
	return &Report{registry: registry, results: results}
}

// Registry returns the registry the report was built against.
func (rep *Report) Registry() *Registry {
	return rep.registry
}

// Result returns the probe result for a dependency.
func (rep *Report) Result(name Name) ProbeResult {
	return rep.results[name]
}

// Installed reports whether the named dependency probed as installed.
func (rep *Report) Installed(name Name) bool {
	return rep.results[name].Installed
}

// Satisfied reports whether a category is satisfied under its policy.
func (rep *Report) Satisfied(cat Category) bool {
	if len(cat.Dependencies) == 0 {
		return true
	}
	installed := 0
	for _, dep := range cat.Dependencies {
		if rep.Installed(dep.Name) {
			installed++
		}
	}
	if cat.Policy == PolicyAny {
		return installed > 0
	}
	return installed == len(cat.Dependencies)
}

// MissingRequired returns the unmet members of required categories. For a
// required any-policy category that is unsatisfied, only its first member is
// reported, since installing any one member fixes the category.
func (rep *Report) MissingRequired() []Dependency {
	var missing []Dependency
	for _, cat := range rep.registry.Required() {
		if rep.Satisfied(cat) {
			continue
		}
		if cat.Policy == PolicyAny {
			missing = append(missing, cat.Dependencies[0])
			continue
		}
		for _, dep := range cat.Dependencies {
			if !rep.Installed(dep.Name) {
				missing = append(missing, dep)
			}
		}
	}
	return missing
}

// Plan computes the dependencies to install for the given selections.
//
// An any-policy category selected as a whole contributes nothing when already
// satisfied, and only its first member otherwise. Explicitly named members
// are always installed when missing, regardless of policy. The result keeps
// selection order and contains no duplicates or already-installed entries.
func (rep *Report) Plan(selections []Selection) []Dependency {
	var plan []Dependency
	seen := make(map[Name]bool)

	add := func(dep Dependency) {
		if seen[dep.Name] || rep.Installed(dep.Name) {
			return
		}
		seen[dep.Name] = true
		plan = append(plan, dep)
	}

	for _, sel := range selections {
		if sel.Whole && sel.Category.Policy == PolicyAny {
			if rep.Satisfied(sel.Category) {
				continue
			}
			if len(sel.Category.Dependencies) > 0 {
				add(sel.Category.Dependencies[0])
			}
			continue
		}
		for _, dep := range sel.Deps {
			add(dep)
		}
	}
	return plan
}
