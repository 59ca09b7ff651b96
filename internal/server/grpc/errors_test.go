package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func errorInfo(t *testing.T, err error) *errdetails.ErrorInfo {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok)
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	t.Fatalf("no ErrorInfo in %v", err)
	return nil
}

func TestToStatus_MapsSentinels(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop()}

	tests := []struct {
		err    error
		code   codes.Code
		reason string
	}{
		{fmt.Errorf("%w: you must be logged in to perform this action", common.ErrorUnauthenticated), codes.Unauthenticated, api.ReasonUnauthenticated},
		{common.ErrorInvalidCredentials, codes.Unauthenticated, api.ReasonInvalidCredentials},
		{common.ErrorForbidden, codes.PermissionDenied, api.ReasonForbidden},
		{common.ErrorNotFound, codes.NotFound, api.ReasonNotFound},
		{common.ErrorAlreadyExists, codes.AlreadyExists, api.ReasonAlreadyExists},
		{common.ErrorValidation, codes.InvalidArgument, api.ReasonInvalidArgument},
		{errors.New("disk on fire"), codes.Internal, api.ReasonInternal},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			err := s.toStatus(tt.err)
			assert.Equal(t, tt.code, status.Code(err))
			info := errorInfo(t, err)
			assert.Equal(t, tt.reason, info.Reason)
			assert.Equal(t, common.ErrorDomain, info.Domain)
		})
	}

	assert.NoError(t, s.toStatus(nil))
}

func TestToStatus_KeepsMessage(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop(), production: true}

	err := s.toStatus(fmt.Errorf("%w: you can only access your own resources", common.ErrorForbidden))
	assert.Equal(t, "forbidden: you can only access your own resources", status.Convert(err).Message())
}

func TestToStatus_InternalMaskedInProduction(t *testing.T) {
	cause := fmt.Errorf("list notes: %w: %w", common.ErrorInternal, errors.New("pq: relation missing"))

	prod := &GRPCServer{logger: logging.Nop(), production: true}
	assert.Equal(t, "internal error", status.Convert(prod.toStatus(cause)).Message())

	dev := &GRPCServer{logger: logging.Nop(), production: false}
	assert.Contains(t, status.Convert(dev.toStatus(cause)).Message(), "relation missing")
}
