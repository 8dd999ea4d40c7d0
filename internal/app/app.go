// Package app implements the application layer for glue-deps.
package app

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"github.com/glue-viz/gluedeps/internal/ui/render"
)

// guiEntryModule is the Python module started by the launcher.
const guiEntryModule = "glue.main"

// PackageManagerFactory builds a package manager by installer name
// ("pip" or "conda").
type PackageManagerFactory func(name string) (ports.PackageManager, error)

// App represents the main application logic.
type App struct {
	registryLoader ports.RegistryLoader
	prober         ports.Prober
	runner         ports.Runner
	journal        ports.Journal
	logger         ports.Logger
	telemetry      ports.Telemetry
	newInstaller   PackageManagerFactory
	installer      string
}

// New creates a new App instance. installer names the default package
// manager used when a command does not override it.
func New(
	loader ports.RegistryLoader,
	prober ports.Prober,
	runner ports.Runner,
	journal ports.Journal,
	logger ports.Logger,
	telemetry ports.Telemetry,
	factory PackageManagerFactory,
	installer string,
) *App {
	return &App{
		registryLoader: loader,
		prober:         prober,
		runner:         runner,
		journal:        journal,
		logger:         logger,
		telemetry:      telemetry,
		newInstaller:   factory,
		installer:      installer,
	}
}

// WithTelemetry replaces the telemetry recorder. The install command uses
// this to enable progress rendering when stderr is a terminal.
func (a *App) WithTelemetry(t ports.Telemetry) *App {
	a.telemetry = t
	return a
}

// ListOptions configures the List operation.
type ListOptions struct {
	// Refresh bypasses the probe cache.
	Refresh bool

	// JSON emits the machine-readable report instead of the styled one.
	JSON bool

	// Out receives the rendered report.
	Out io.Writer
}

// List probes the registry and renders the dependency report, scoped to the
// given targets when any are named.
func (a *App) List(ctx context.Context, targets []string, opts ListOptions) error {
	report, selections, err := a.probeTargets(ctx, targets, opts.Refresh)
	if err != nil {
		return err
	}

	if opts.JSON {
		data, err := render.ReportJSON(report, selections)
		if err != nil {
			return zerr.Wrap(err, "failed to marshal report")
		}
		_, err = opts.Out.Write(append(data, '\n'))
		return err
	}
	return render.Report(opts.Out, report, selections)
}

// InstallOptions configures the Install operation.
type InstallOptions struct {
	// DryRun prints the install plan without executing it.
	DryRun bool

	// Installer overrides the configured package manager for this run.
	Installer string

	// Out receives plan and summary output.
	Out io.Writer
}

// Install installs the missing dependencies selected by targets, verifies
// the result, and appends a journal record. It returns ErrInstallFailed when
// any package remains missing afterwards.
func (a *App) Install(ctx context.Context, targets []string, opts InstallOptions) error {
	report, selections, err := a.probeTargets(ctx, targets, false)
	if err != nil {
		return err
	}

	installerName := opts.Installer
	if installerName == "" {
		installerName = a.installer
	}
	manager, err := a.newInstaller(installerName)
	if err != nil {
		return err
	}

	plan := report.Plan(selections)
	if opts.DryRun {
		render.Plan(opts.Out, manager.Name(), plan)
		return nil
	}
	if len(plan) == 0 {
		render.Summary(opts.Out, domain.InstallRecord{})
		return nil
	}

	interpreter, err := a.prober.Interpreter()
	if err != nil {
		return err
	}
	record := domain.InstallRecord{
		ID:          uuid.NewString(),
		Time:        time.Now(),
		Installer:   manager.Name(),
		Interpreter: interpreter,
	}
	for _, dep := range plan {
		record.Packages = append(record.Packages, dep.Name.String())
	}

	failed := a.installAll(ctx, manager, plan)

	// The environment changed; cached probe results are no longer valid.
	if err := a.prober.Invalidate(); err != nil {
		a.logger.Warn("failed to invalidate probe cache: " + err.Error())
	}

	record.Failed = a.verify(ctx, report.Registry(), plan, failed)
	record.Duration = time.Since(record.Time)

	if err := a.journal.Append(record); err != nil {
		a.logger.Warn("failed to record install history: " + err.Error())
	}

	render.Summary(opts.Out, record)
	if !record.Succeeded() {
		err := zerr.Wrap(domain.ErrInstallFailed, "packages still missing after install")
		return zerr.With(err, "packages", strings.Join(record.Failed, ", "))
	}
	return nil
}

// installAll runs the installer for each planned dependency sequentially,
// recording progress per package. It returns the names that failed.
func (a *App) installAll(ctx context.Context, manager ports.PackageManager, plan []domain.Dependency) map[domain.Name]bool {
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn("failed to flush progress output: " + err.Error())
		}
	}()

	failed := make(map[domain.Name]bool)
	for _, dep := range plan {
		if ctx.Err() != nil {
			failed[dep.Name] = true
			continue
		}

		vertexCtx, vertex := a.telemetry.Record(ctx, "install "+dep.Name.String())
		err := manager.Install(vertexCtx, dep, vertex.Stdout(), vertex.Stderr())
		vertex.Complete(err)
		if err != nil {
			a.logger.Error(err)
			failed[dep.Name] = true
		}
	}
	return failed
}

// verify re-probes after installation and returns the names of planned
// dependencies that are still missing, in plan order.
func (a *App) verify(ctx context.Context, registry *domain.Registry, plan []domain.Dependency, failed map[domain.Name]bool) []string {
	results, err := a.prober.Probe(ctx, registry, true)
	if err != nil {
		// Verification could not run; report the install-time failures.
		a.logger.Warn("failed to verify installation: " + err.Error())
		var names []string
		for _, dep := range plan {
			if failed[dep.Name] {
				names = append(names, dep.Name.String())
			}
		}
		return names
	}

	report := domain.NewReport(registry, results)
	var names []string
	for _, dep := range plan {
		if failed[dep.Name] || !report.Installed(dep.Name) {
			names = append(names, dep.Name.String())
		}
	}
	return names
}

// LaunchOptions configures the Launch operation.
type LaunchOptions struct {
	// NoCheck skips the required-dependency verification.
	NoCheck bool

	// Stdout and Stderr are handed to the GUI process.
	Stdout io.Writer
	Stderr io.Writer
}

// Launch verifies the required dependency surface and starts the Glue GUI,
// forwarding args to the Python entry point.
func (a *App) Launch(ctx context.Context, args []string, opts LaunchOptions) error {
	if !opts.NoCheck {
		registry, err := a.registryLoader.Load()
		if err != nil {
			return err
		}
		results, err := a.prober.Probe(ctx, registry, false)
		if err != nil {
			return err
		}

		report := domain.NewReport(registry, results)
		if missing := report.MissingRequired(); len(missing) > 0 {
			names := make([]string, 0, len(missing))
			for _, dep := range missing {
				names = append(names, dep.Name.String())
			}
			err := zerr.With(zerr.Wrap(domain.ErrMissingRequired, "cannot launch"), "missing", strings.Join(names, ", "))
			return zerr.With(err, "hint", "run 'glue-deps install' to install them")
		}
	}

	interpreter, err := a.prober.Interpreter()
	if err != nil {
		return err
	}
	argv := append([]string{interpreter, "-m", guiEntryModule}, args...)
	return a.runner.Run(ctx, ports.RunSpec{
		Argv:   argv,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
}

// History renders the most recent install journal records.
func (a *App) History(_ context.Context, n int, out io.Writer) error {
	records, err := a.journal.Recent(n)
	if err != nil {
		return err
	}
	render.History(out, records)
	return nil
}

// probeTargets loads the registry, resolves targets, probes, and assembles
// the report shared by List and Install.
func (a *App) probeTargets(ctx context.Context, targets []string, refresh bool) (*domain.Report, []domain.Selection, error) {
	registry, err := a.registryLoader.Load()
	if err != nil {
		return nil, nil, err
	}

	selections, err := registry.Resolve(targets)
	if err != nil {
		return nil, nil, err
	}

	results, err := a.prober.Probe(ctx, registry, refresh)
	if err != nil {
		return nil, nil, err
	}

	return domain.NewReport(registry, results), selections, nil
}
