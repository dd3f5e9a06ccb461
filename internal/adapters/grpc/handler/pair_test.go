package handler

import (
	"context"
	"errors"
	"io"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ogurasousui/employee-pairs/internal/core/assignment"
	"github.com/ogurasousui/employee-pairs/internal/core/collaboration"
)

type stubPairUseCase struct {
	findInput collaboration.FindInput
	findData  string
	findOut   *collaboration.Report
	findErr   error
	calls     int
}

func (s *stubPairUseCase) FindLongestInFile(ctx context.Context, in collaboration.FindInFileInput) (*collaboration.Report, error) {
	return nil, errors.New("not used")
}

func (s *stubPairUseCase) FindLongest(ctx context.Context, in collaboration.FindInput) (*collaboration.Report, error) {
	s.calls++
	s.findInput = in
	if in.Data != nil {
		b, _ := io.ReadAll(in.Data)
		s.findData = string(b)
	}
	return s.findOut, s.findErr
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()

	s, err := structpb.NewStruct(m)
	if err != nil {
		t.Fatalf("failed to build struct: %v", err)
	}
	return s
}

func TestPairGrpcHandler_FindLongestPair_Success(t *testing.T) {
	t.Parallel()

	stub := &stubPairUseCase{findOut: &collaboration.Report{
		RunID:   "run-1",
		Records: 4,
		Best:    &collaboration.AggregatedPair{EmployeeID1: 1, EmployeeID2: 2, Days: 12, ProjectIDs: []int{10, 20}},
	}}
	handler := NewPairGrpcHandler(stub)

	resp, err := handler.FindLongestPair(context.Background(), mustStruct(t, map[string]any{
		"csv":         "1,10,2020-01-01,NULL",
		"date_format": "yyyy-MM-dd",
	}))
	if err != nil {
		t.Fatalf("FindLongestPair returned error: %v", err)
	}

	if stub.findData != "1,10,2020-01-01,NULL" {
		t.Fatalf("unexpected data forwarded: %q", stub.findData)
	}
	if stub.findInput.DateFormat != "yyyy-MM-dd" {
		t.Fatalf("unexpected date format forwarded: %q", stub.findInput.DateFormat)
	}

	fields := resp.GetFields()
	if fields["employee_id_1"].GetNumberValue() != 1 || fields["employee_id_2"].GetNumberValue() != 2 {
		t.Fatalf("unexpected employee ids: %v", resp)
	}
	if fields["days"].GetNumberValue() != 12 {
		t.Fatalf("unexpected days: %v", fields["days"])
	}
	if fields["run_id"].GetStringValue() != "run-1" || fields["records"].GetNumberValue() != 4 {
		t.Fatalf("unexpected metadata: %v", resp)
	}

	projects := fields["project_ids"].GetListValue().GetValues()
	if len(projects) != 2 || projects[0].GetNumberValue() != 10 || projects[1].GetNumberValue() != 20 {
		t.Fatalf("unexpected project ids: %v", projects)
	}
}

func TestPairGrpcHandler_FindLongestPair_InvalidRequest(t *testing.T) {
	t.Parallel()

	cases := map[string]*structpb.Struct{
		"nil request":       nil,
		"missing csv":       mustStruct(t, map[string]any{}),
		"blank csv":         mustStruct(t, map[string]any{"csv": "  \n"}),
		"csv not a string":  mustStruct(t, map[string]any{"csv": 12}),
		"format not string": mustStruct(t, map[string]any{"csv": "1,2,2020-01-01,NULL", "date_format": true}),
	}

	for name, req := range cases {
		stub := &stubPairUseCase{}
		_, err := NewPairGrpcHandler(stub).FindLongestPair(context.Background(), req)
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("%s: expected InvalidArgument, got %v", name, err)
		}
		if stub.calls != 0 {
			t.Errorf("%s: use case must not be called", name)
		}
	}
}

func TestPairGrpcHandler_FindLongestPair_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"format", &assignment.FormatError{Line: 3, Field: "employee id", Err: errors.New("bad")}, codes.InvalidArgument},
		{"missing input", assignment.ErrMissingInput, codes.InvalidArgument},
		{"no qualifying pair", collaboration.ErrNoQualifyingPair, codes.NotFound},
		{"canceled", context.Canceled, codes.Canceled},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"unexpected", errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		stub := &stubPairUseCase{findErr: tc.err}
		_, err := NewPairGrpcHandler(stub).FindLongestPair(context.Background(), mustStruct(t, map[string]any{"csv": "x"}))
		if status.Code(err) != tc.code {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}
