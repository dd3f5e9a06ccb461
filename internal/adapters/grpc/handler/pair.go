package handler

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ogurasousui/employee-pairs/internal/core/collaboration"
)

const (
	fieldCSV        = "csv"
	fieldDateFormat = "date_format"
)

// PairGrpcHandler は PairService の gRPC 実装です。
type PairGrpcHandler struct {
	svc collaboration.UseCase
}

// NewPairGrpcHandler は PairGrpcHandler を生成します。
func NewPairGrpcHandler(svc collaboration.UseCase) *PairGrpcHandler {
	return &PairGrpcHandler{svc: svc}
}

// FindLongestPair は csv フィールドの内容を解析し、最も長く一緒に働いたペアを返します。
func (h *PairGrpcHandler) FindLongestPair(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	fields := req.GetFields()

	csvValue, ok := fields[fieldCSV]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "csv is required")
	}
	if _, isString := csvValue.GetKind().(*structpb.Value_StringValue); !isString {
		return nil, status.Error(codes.InvalidArgument, "csv must be a string")
	}
	data := csvValue.GetStringValue()
	if strings.TrimSpace(data) == "" {
		return nil, status.Error(codes.InvalidArgument, "csv is required")
	}

	dateFormat := ""
	if v, ok := fields[fieldDateFormat]; ok {
		if _, isString := v.GetKind().(*structpb.Value_StringValue); !isString {
			return nil, status.Error(codes.InvalidArgument, "date_format must be a string")
		}
		dateFormat = v.GetStringValue()
	}

	report, err := h.svc.FindLongest(ctx, collaboration.FindInput{
		Data:       strings.NewReader(data),
		DateFormat: dateFormat,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	resp, err := toPairStruct(report)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func toPairStruct(report *collaboration.Report) (*structpb.Struct, error) {
	if report == nil || report.Best == nil {
		return nil, fmt.Errorf("report without best pair")
	}

	best := report.Best
	projectIDs := make([]any, len(best.ProjectIDs))
	for i, id := range best.ProjectIDs {
		projectIDs[i] = id
	}

	return structpb.NewStruct(map[string]any{
		"run_id":        report.RunID,
		"records":       report.Records,
		"employee_id_1": best.EmployeeID1,
		"employee_id_2": best.EmployeeID2,
		"project_ids":   projectIDs,
		"days":          best.Days,
	})
}
