// Package domain contains the core domain models for the Glue dependency registry.
package domain

// Dependency describes one library Glue can make use of.
type Dependency struct {
	// Name is the canonical short name shown to the user (e.g. "numpy").
	Name Name

	// Module is the import name probed inside the Python interpreter.
	// Defaults to Name when the registry omits it.
	Module Name

	// Package is the pip distribution name used for installation.
	Package Name

	// CondaPackage is the conda package name, when it differs from Package.
	CondaPackage Name

	// MinVersion is the documented minimum version. Informational only;
	// the prober reports whatever version is installed.
	MinVersion string

	// Info is a one-line description of what Glue uses the library for.
	Info string
}

// PipName returns the distribution name handed to pip.
func (d Dependency) PipName() string {
	return d.Package.String()
}

// CondaName returns the package name handed to conda, falling back to the
// pip distribution name when no conda-specific name is registered.
func (d Dependency) CondaName() string {
	if !d.CondaPackage.IsZero() && d.CondaPackage.String() != "" {
		return d.CondaPackage.String()
	}
	return d.Package.String()
}

// Policy controls how a category counts as satisfied.
type Policy string

const (
	// PolicyAll means every member of the category is expected to be installed.
	PolicyAll Policy = "all"

	// PolicyAny means the category is satisfied once at least one member is
	// installed. The GUI-framework category uses this: exactly one Qt binding
	// is needed, installing a second one is wasteful.
	PolicyAny Policy = "any"
)

// Category is an ordered group of dependencies that enable one area of Glue.
type Category struct {
	// Name identifies the category (e.g. "required", "gui", "astronomy").
	Name Name

	// Info describes what the category enables.
	Info string

	// Policy is the satisfaction rule for the category.
	Policy Policy

	// Required marks categories Glue cannot start without.
	Required bool

	// Dependencies are the members, in display and install order.
	Dependencies []Dependency
}
