package domain

import "time"

// InstallRecord is one entry in the install journal.
type InstallRecord struct {
	// ID uniquely identifies the install run.
	ID string `json:"id"`

	// Time is when the run started.
	Time time.Time `json:"time"`

	// Installer names the package manager used ("pip" or "conda").
	Installer string `json:"installer"`

	// Interpreter is the Python interpreter the packages were installed for.
	Interpreter string `json:"interpreter"`

	// Packages are the package names the run attempted to install.
	Packages []string `json:"packages"`

	// Failed are the packages that did not install or remained missing
	// after verification.
	Failed []string `json:"failed,omitempty"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`
}

// Succeeded reports whether every package in the run installed cleanly.
func (r InstallRecord) Succeeded() bool {
	return len(r.Failed) == 0
}
