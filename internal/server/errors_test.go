package server

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bidkiller/dce-analyzer/internal/common"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrUnsupportedFormat, codes.InvalidArgument},
		{common.ErrCorruptDocument, codes.InvalidArgument},
		{common.ErrEmptyContent, codes.InvalidArgument},
		{common.ErrDocumentTooLarge, codes.InvalidArgument},
		{common.ErrInvalidInput, codes.InvalidArgument},
		{common.ErrQuotaExceeded, codes.ResourceExhausted},
		{common.ErrNotFound, codes.NotFound},
		{common.ErrNotExportable, codes.FailedPrecondition},
		{errors.New("pgx: broken pipe"), codes.Internal},
	}
	for _, tt := range tests {
		got := status.Code(toStatus(fmt.Errorf("context: %w", tt.err)))
		if got != tt.want {
			t.Errorf("toStatus(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestToStatus_HidesInternalDetail(t *testing.T) {
	st, _ := status.FromError(toStatus(errors.New("password=hunter2 dial failed")))
	if st.Message() != "internal error" {
		t.Errorf("internal errors must not leak detail, got %q", st.Message())
	}
}
