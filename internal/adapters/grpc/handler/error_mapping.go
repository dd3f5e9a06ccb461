package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/employee-pairs/internal/core/assignment"
	"github.com/ogurasousui/employee-pairs/internal/core/collaboration"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assignment.ErrFormat),
		errors.Is(err, assignment.ErrMissingInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, collaboration.ErrNoQualifyingPair):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
