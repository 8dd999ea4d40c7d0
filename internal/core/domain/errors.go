package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTarget is returned when a named target matches neither a
	// category nor a dependency in the registry.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrDuplicateDependency is returned when a registry declares the same
	// dependency name twice.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrRegistryInvalid is returned when a registry file cannot be parsed
	// or fails validation.
	ErrRegistryInvalid = zerr.New("invalid dependency registry")

	// ErrInterpreterNotFound is returned when no Python interpreter can be
	// located on PATH and none is configured.
	ErrInterpreterNotFound = zerr.New("python interpreter not found")

	// ErrInstallFailed is returned when one or more packages could not be
	// installed or remain missing after installation.
	ErrInstallFailed = zerr.New("install failed")

	// ErrMissingRequired is returned by the launcher when required
	// dependencies are missing.
	ErrMissingRequired = zerr.New("required dependencies missing")

	// ErrLaunchFailed is returned when the GUI process could not be started
	// or exited with a failure.
	ErrLaunchFailed = zerr.New("glue launch failed")
)
