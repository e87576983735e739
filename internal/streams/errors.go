package streams

import (
	"fmt"

	"san-monitor/internal/shared/svcerrors"
)

const (
	codeInternalAuditSinkFailed = "AUD_9000"
)

// errInternalAuditSinkFailed wraps a failed Append on an audit sink.
func errInternalAuditSinkFailed(sink string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAuditSinkFailed, fmt.Errorf("auditSinkFailed(%s): %w", sink, cause))
}
