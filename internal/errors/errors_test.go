package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "assignment incomplete",
			expected: "FAILED_PRECONDITION: assignment incomplete",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load session")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load session", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeReasonAndMeta() {
	baseErr := errors.FailedPrecondition("position 2 already used").
		WithReason("SLOT_ALREADY_CONSUMED").
		WithMeta("position", 2)
	wrapped := errors.Wrap(baseErr, "pick rejected")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Equal("SLOT_ALREADY_CONSUMED", wrapped.Reason)
	s.Equal(2, wrapped.Meta["position"])

	// metadata is copied, not shared
	wrapped.WithMeta("extra", true)
	s.NotContains(baseErr.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapWithCodeDropsReason() {
	baseErr := errors.FailedPrecondition("complete").WithReason("SESSION_COMPLETE")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInternal, "unexpected")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Empty(wrapped.Reason)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("character %s not found", "123")
	s.Equal(errors.CodeNotFound, err.Code)
	s.Equal("character 123 not found", err.Message)

	err2 := errors.InvalidArgumentf("invalid position: %d", 9)
	s.Equal(errors.CodeInvalidArgument, err2.Code)
	s.Equal("invalid position: 9", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	consumed := errors.FailedPrecondition("a").WithReason("SLOT_ALREADY_CONSUMED")
	complete := errors.FailedPrecondition("b").WithReason("SESSION_COMPLETE")

	s.True(errors.Is(consumed, errors.FailedPrecondition("")))
	s.True(errors.Is(errors.Wrap(consumed, "wrapped"), errors.New(errors.CodeFailedPrecondition, "").WithReason("SLOT_ALREADY_CONSUMED")))
	s.False(errors.Is(complete, errors.New(errors.CodeFailedPrecondition, "").WithReason("SLOT_ALREADY_CONSUMED")))
	s.False(errors.Is(consumed, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.True(errors.IsNotFound(notFoundErr))
	s.True(errors.IsNotFound(wrappedErr))
	s.False(errors.IsNotFound(invalidErr))

	s.True(errors.IsInvalidArgument(invalidErr))
	s.False(errors.IsInvalidArgument(notFoundErr))

	s.True(errors.HasReason(errors.Internal("x").WithReason("R"), "R"))
	s.False(errors.HasReason(nil, ""))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Equal("user friendly message", errors.GetMessage(err))
	s.Equal("wrapped message", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsReason() {
	err := errors.FailedPrecondition("position 0 already used").
		WithReason("SLOT_ALREADY_CONSUMED").
		WithMeta("position", 0)

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("position 0 already used", st.Message())

	info := errors.ErrorInfo(st)
	s.Require().NotNil(info)
	s.Equal("SLOT_ALREADY_CONSUMED", info.GetReason())
	s.Equal(errors.ErrorDomain, info.GetDomain())
	s.Equal("0", info.GetMetadata()["position"])

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(back))
	s.Equal("SLOT_ALREADY_CONSUMED", errors.GetReason(back))
	s.Equal("0", errors.GetMeta(back)["position"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorWithoutDetails() {
	st, ok := status.FromError(errors.ToGRPCError(errors.NotFound("gone")))
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Empty(st.Details())
}

func (s *ErrorsTestSuite) TestToGRPCErrorContext() {
	st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("op: %w", context.DeadlineExceeded)))
	s.Equal(codes.DeadlineExceeded, st.Code())

	st, _ = status.FromError(errors.ToGRPCError(fmt.Errorf("plain")))
	s.Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestFromGRPCErrorPlainStatus() {
	err := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Equal("invalid input", errors.GetMessage(err))
	s.Empty(errors.GetReason(err))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("bogus"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
