package server

import (
	"errors"

	"github.com/bidkiller/dce-analyzer/internal/common"
)

// toStatus maps domain errors onto distinct gRPC codes so callers can tell
// a rejected input from an exhausted quota from a missing resource.
func toStatus(err error) error {
	switch {
	case common.IsInputError(err), errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrQuotaExceeded):
		return common.ResourceExhaustedError(err.Error())
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	case errors.Is(err, common.ErrNotExportable):
		return common.FailedPreconditionError(err.Error())
	default:
		return common.InternalError("internal error")
	}
}
