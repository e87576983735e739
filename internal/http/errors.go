package http

import (
	"fmt"

	"san-monitor/internal/shared/svcerrors"
)

const (
	codeInvalidQueryArgument = "MON_1000"
	codeInvalidAuditQuery    = "AUD_1000"

	codeInternalAuditStoreFailed = "AUD_9000"
)

func errInvalidQueryArgument(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryArgument, msg, cause)
}

func errInvalidAuditQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidAuditQuery, msg, cause)
}

func errInternalAuditStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAuditStoreFailed, fmt.Errorf("auditStoreFailed: %w", cause))
}
