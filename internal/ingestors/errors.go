package ingestors

import (
	"fmt"

	"san-monitor/internal/shared/svcerrors"
)

// EventIngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"

	codeInternalEventBatchStoreFailed = "ING_9000"
	codeInternalEventPublishFailed    = "ING_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errEventBatchAlreadyProcessed returns an error when an event batch has already been processed.
func errEventBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "event batch already processed", cause)
}

func errInternalEventBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventBatchStoreFailed, fmt.Errorf("eventBatchStoreFailed: %w", cause))
}

func errInternalEventPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventPublishFailed, fmt.Errorf("eventPublishFailed: %w", cause))
}
