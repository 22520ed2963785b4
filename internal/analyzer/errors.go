package analyzer

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/penwyp/go-entparser/internal/core/model"
	"golang.org/x/sys/unix"
)

// classifyFSError maps file-system failures onto the run-level error kinds.
// Missing paths only count as ErrSourceNotFound when source is set.
func classifyFSError(op string, err error, source bool) error {
	switch {
	case errors.Is(err, unix.ENAMETOOLONG):
		return fmt.Errorf("%s: %w: %w", op, model.ErrPathTooLong, err)
	case errors.Is(err, fs.ErrPermission), errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return fmt.Errorf("%s: %w: %w", op, model.ErrAccessDenied, err)
	case source && errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w: %w", op, model.ErrSourceNotFound, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
