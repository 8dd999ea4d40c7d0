package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glue-viz/gluedeps/internal/core/domain"
)

func dep(name string) domain.Dependency {
	return domain.Dependency{
		Name:    domain.NewName(name),
		Module:  domain.NewName(name),
		Package: domain.NewName(name),
	}
}

func testRegistry(t *testing.T) *domain.Registry {
	t.Helper()
	registry, err := domain.NewRegistry([]domain.Category{
		{
			Name:         domain.NewName("required"),
			Policy:       domain.PolicyAll,
			Required:     true,
			Dependencies: []domain.Dependency{dep("numpy"), dep("pandas")},
		},
		{
			Name:         domain.NewName("gui"),
			Policy:       domain.PolicyAny,
			Required:     true,
			Dependencies: []domain.Dependency{dep("pyqt5"), dep("pyside2")},
		},
		{
			Name:         domain.NewName("export"),
			Policy:       domain.PolicyAll,
			Dependencies: []domain.Dependency{dep("plotly")},
		},
	})
	require.NoError(t, err)
	return registry
}

func TestNewRegistry_DuplicateDependency(t *testing.T) {
	_, err := domain.NewRegistry([]domain.Category{
		{Name: domain.NewName("a"), Dependencies: []domain.Dependency{dep("numpy")}},
		{Name: domain.NewName("b"), Dependencies: []domain.Dependency{dep("numpy")}},
	})
	assert.True(t, errors.Is(err, domain.ErrDuplicateDependency))
}

func TestNewRegistry_DuplicateCategory(t *testing.T) {
	_, err := domain.NewRegistry([]domain.Category{
		{Name: domain.NewName("a")},
		{Name: domain.NewName("a")},
	})
	assert.True(t, errors.Is(err, domain.ErrRegistryInvalid))
}

func TestResolve_Empty_SelectsEverything(t *testing.T) {
	registry := testRegistry(t)

	selections, err := registry.Resolve(nil)
	require.NoError(t, err)
	require.Len(t, selections, 3)
	for _, sel := range selections {
		assert.True(t, sel.Whole)
		assert.Equal(t, sel.Category.Dependencies, sel.Deps)
	}
}

func TestResolve_AllAlias(t *testing.T) {
	registry := testRegistry(t)

	selections, err := registry.Resolve([]string{"all"})
	require.NoError(t, err)
	assert.Len(t, selections, 3)
}

func TestResolve_CategoryName(t *testing.T) {
	registry := testRegistry(t)

	selections, err := registry.Resolve([]string{"gui"})
	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.True(t, selections[0].Whole)
	assert.Equal(t, "gui", selections[0].Category.Name.String())
	assert.Len(t, selections[0].Deps, 2)
}

func TestResolve_DependencyName(t *testing.T) {
	registry := testRegistry(t)

	selections, err := registry.Resolve([]string{"plotly"})
	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.False(t, selections[0].Whole)
	require.Len(t, selections[0].Deps, 1)
	assert.Equal(t, "plotly", selections[0].Deps[0].Name.String())
}

func TestResolve_MixedTargets_KeepRegistryOrder(t *testing.T) {
	registry := testRegistry(t)

	selections, err := registry.Resolve([]string{"plotly", "required"})
	require.NoError(t, err)
	require.Len(t, selections, 2)
	assert.Equal(t, "required", selections[0].Category.Name.String())
	assert.Equal(t, "export", selections[1].Category.Name.String())
}

func TestResolve_CaseInsensitive(t *testing.T) {
	registry := testRegistry(t)

	selections, err := registry.Resolve([]string{"  GUI "})
	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.Equal(t, "gui", selections[0].Category.Name.String())
}

func TestResolve_MixedCaseRegistryNames(t *testing.T) {
	registry, err := domain.NewRegistry([]domain.Category{{
		Name:         domain.NewName("GUI"),
		Policy:       domain.PolicyAny,
		Dependencies: []domain.Dependency{dep("PyQt5"), dep("pyside2")},
	}})
	require.NoError(t, err)

	for _, target := range []string{"PyQt5", "pyqt5", "PYQT5"} {
		selections, err := registry.Resolve([]string{target})
		require.NoError(t, err, target)
		require.Len(t, selections, 1)
		require.Len(t, selections[0].Deps, 1)
		// Declared casing survives resolution.
		assert.Equal(t, "PyQt5", selections[0].Deps[0].Name.String())
	}

	d, ok := registry.Dependency(domain.NewName("pyqt5"))
	require.True(t, ok)
	assert.Equal(t, "PyQt5", d.Name.String())

	cat, ok := registry.Category(domain.NewName("gui"))
	require.True(t, ok)
	assert.Equal(t, "GUI", cat.Name.String())
}

func TestResolve_UnknownTarget(t *testing.T) {
	registry := testRegistry(t)

	_, err := registry.Resolve([]string{"nump"})
	assert.True(t, errors.Is(err, domain.ErrUnknownTarget))
}

func TestSuggest(t *testing.T) {
	registry := testRegistry(t)

	assert.Equal(t, "numpy", registry.Suggest("nump"))
	assert.Equal(t, "gui", registry.Suggest("guy"))
	assert.Empty(t, registry.Suggest("tensorflow"))
}

func TestRegistry_Lookups(t *testing.T) {
	registry := testRegistry(t)

	_, ok := registry.Dependency(domain.NewName("pandas"))
	assert.True(t, ok)
	_, ok = registry.Dependency(domain.NewName("missing"))
	assert.False(t, ok)

	cat, ok := registry.Category(domain.NewName("export"))
	assert.True(t, ok)
	assert.Equal(t, "export", cat.Name.String())

	assert.Equal(t, 5, registry.Len())

	required := registry.Required()
	require.Len(t, required, 2)
	assert.Equal(t, "required", required[0].Name.String())
	assert.Equal(t, "gui", required[1].Name.String())
}
