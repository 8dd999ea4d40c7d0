// Package python implements dependency probing against a Python interpreter.
package python

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// interpreterCandidates are tried in order when no interpreter is configured.
var interpreterCandidates = []string{"python3", "python"}

// FindInterpreter locates the Python interpreter to probe. An explicit path
// wins; otherwise the usual names are searched on PATH.
func FindInterpreter(explicit string) (string, error) {
	if explicit != "" {
		if strings.ContainsRune(explicit, os.PathSeparator) {
			if _, err := os.Stat(explicit); err != nil {
				return "", zerr.With(errors.Join(domain.ErrInterpreterNotFound, err), "interpreter", explicit)
			}
			return explicit, nil
		}
		path, err := exec.LookPath(explicit)
		if err != nil {
			return "", zerr.With(errors.Join(domain.ErrInterpreterNotFound, err), "interpreter", explicit)
		}
		return path, nil
	}

	for _, candidate := range interpreterCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", domain.ErrInterpreterNotFound
}
