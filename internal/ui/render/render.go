// Package render turns dependency reports into terminal output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/ui/style"
)

// Report writes the dependency report grouped by category. When targets were
// given, only the listed categories appear.
func Report(w io.Writer, report *domain.Report, selections []domain.Selection) error {
	for i, sel := range selections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderCategory(w, report, sel)
	}
	return nil
}

func renderCategory(w io.Writer, report *domain.Report, sel domain.Selection) {
	cat := sel.Category

	marker := style.Installed.Render(style.Check)
	if !report.Satisfied(cat) {
		marker = style.Missing.Render(style.Cross)
		if cat.Policy == domain.PolicyAll && !cat.Required {
			marker = style.Partial.Render(style.Warning)
		}
	}

	heading := style.Heading.Render(cat.Name.String())
	fmt.Fprintf(w, "%s %s  %s\n", marker, heading, style.Muted.Render(cat.Info))

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, dep := range sel.Deps {
		result := report.Result(dep.Name)
		icon := style.Missing.Render(style.Cross)
		version := "missing"
		if result.Installed {
			icon = style.Installed.Render(style.Check)
			version = result.Version
			if version == "" {
				version = "installed"
			}
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", icon, dep.Name.String(), version, style.Muted.Render(dep.Info))
	}
	_ = tw.Flush()
}

// Plan writes a dry-run install plan.
func Plan(w io.Writer, installer string, plan []domain.Dependency) {
	if len(plan) == 0 {
		fmt.Fprintln(w, "Nothing to install.")
		return
	}
	fmt.Fprintf(w, "Would install %d package(s) with %s:\n", len(plan), installer)
	for _, dep := range plan {
		fmt.Fprintf(w, "  %s\n", dep.Name.String())
	}
}

// Summary writes the outcome of an install run.
func Summary(w io.Writer, record domain.InstallRecord) {
	if len(record.Packages) == 0 {
		fmt.Fprintln(w, "Nothing to install; everything requested is already present.")
		return
	}
	installed := len(record.Packages) - len(record.Failed)
	fmt.Fprintf(w, "Installed %d of %d package(s) in %s.\n",
		installed, len(record.Packages), record.Duration.Round(time.Millisecond))
	if len(record.Failed) > 0 {
		fmt.Fprintf(w, "%s failed: %s\n",
			style.Missing.Render(style.Cross), strings.Join(record.Failed, ", "))
	}
}

// History writes install journal records, newest first.
func History(w io.Writer, records []domain.InstallRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No installs recorded yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, record := range records {
		status := style.Installed.Render(style.Check)
		if !record.Succeeded() {
			status = style.Missing.Render(style.Cross)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			status,
			record.Time.Format(time.RFC3339),
			record.Installer,
			strings.Join(record.Packages, ", "))
	}
	_ = tw.Flush()
}

// jsonDependency is the machine-readable per-dependency shape.
type jsonDependency struct {
	Name      string `json:"name"`
	Module    string `json:"module"`
	Package   string `json:"package"`
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Info      string `json:"info,omitempty"`
}

// jsonCategory is the machine-readable per-category shape.
type jsonCategory struct {
	Name         string           `json:"name"`
	Info         string           `json:"info,omitempty"`
	Policy       string           `json:"policy"`
	Required     bool             `json:"required"`
	Satisfied    bool             `json:"satisfied"`
	Dependencies []jsonDependency `json:"dependencies"`
}

// ReportJSON marshals the report for --json consumers.
func ReportJSON(report *domain.Report, selections []domain.Selection) ([]byte, error) {
	categories := make([]jsonCategory, 0, len(selections))
	for _, sel := range selections {
		cat := sel.Category
		deps := make([]jsonDependency, 0, len(sel.Deps))
		for _, dep := range sel.Deps {
			result := report.Result(dep.Name)
			deps = append(deps, jsonDependency{
				Name:      dep.Name.String(),
				Module:    dep.Module.String(),
				Package:   dep.PipName(),
				Installed: result.Installed,
				Version:   result.Version,
				Detail:    result.Detail,
				Info:      dep.Info,
			})
		}
		categories = append(categories, jsonCategory{
			Name:         cat.Name.String(),
			Info:         cat.Info,
			Policy:       string(cat.Policy),
			Required:     cat.Required,
			Satisfied:    report.Satisfied(cat),
			Dependencies: deps,
		})
	}
	return json.MarshalIndent(categories, "", "  ")
}
