package aggregators

import (
	"errors"
	"fmt"

	"san-monitor/internal/shared/svcerrors"
)

var (
	ErrPathNotFound = errors.New("path not found")
)

const (
	codePathNotFound = "MON_1001"
)

// errPathNotFound returns an error when a path has never been observed.
func errPathNotFound(path string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codePathNotFound, fmt.Sprintf("path not found: %s", path), ErrPathNotFound)
}
