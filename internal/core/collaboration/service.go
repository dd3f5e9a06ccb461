package collaboration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ogurasousui/employee-pairs/internal/core/assignment"
)

// Parser は入力テキストを WorkAssignment へ変換する抽象です。
type Parser interface {
	ParseFile(ctx context.Context, path string, opts assignment.ParseOptions) ([]assignment.WorkAssignment, error)
	Parse(ctx context.Context, r io.Reader, opts assignment.ParseOptions) ([]assignment.WorkAssignment, error)
}

// UseCase は社員ペア探索ユースケースの公開インターフェースです。
type UseCase interface {
	FindLongestInFile(ctx context.Context, in FindInFileInput) (*Report, error)
	FindLongest(ctx context.Context, in FindInput) (*Report, error)
}

// FindInFileInput はファイルを入力とする探索の入力です。
type FindInFileInput struct {
	Path       string
	DateFormat string
}

// FindInput は読み込み済みの入力を対象とする探索の入力です。
type FindInput struct {
	Data       io.Reader
	DateFormat string
}

// Service は入力の解析とペア探索をまとめます。
type Service struct {
	parser Parser
	finder *Finder
	logger *zap.Logger
	newID  func() string
}

// NewService は Service を生成します。
func NewService(parser Parser, finder *Finder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parser == nil {
		parser = assignment.NewParser(nil, logger)
	}
	if finder == nil {
		finder = &Finder{logger: logger}
	}
	return &Service{parser: parser, finder: finder, logger: logger, newID: uuid.NewString}
}

// FindLongestInFile は path のファイルを解析し、最も長く一緒に働いたペアを返します。
func (s *Service) FindLongestInFile(ctx context.Context, in FindInFileInput) (*Report, error) {
	path := strings.TrimSpace(in.Path)
	if path == "" {
		return nil, fmt.Errorf("path is empty: %w", assignment.ErrMissingInput)
	}

	runID := s.newID()
	logger := s.logger.With(zap.String("run_id", runID), zap.String("path", path))

	records, err := s.parser.ParseFile(ctx, path, assignment.ParseOptions{DateFormat: in.DateFormat})
	if err != nil {
		logger.Error("failed to parse input", zap.Error(err))
		return nil, err
	}

	return s.find(ctx, runID, logger, records)
}

// FindLongest は in.Data を解析し、最も長く一緒に働いたペアを返します。
func (s *Service) FindLongest(ctx context.Context, in FindInput) (*Report, error) {
	if in.Data == nil {
		return nil, fmt.Errorf("data is nil: %w", assignment.ErrMissingInput)
	}

	runID := s.newID()
	logger := s.logger.With(zap.String("run_id", runID))

	records, err := s.parser.Parse(ctx, in.Data, assignment.ParseOptions{DateFormat: in.DateFormat})
	if err != nil {
		logger.Error("failed to parse input", zap.Error(err))
		return nil, err
	}

	return s.find(ctx, runID, logger, records)
}

// find は該当ペアが無い場合も Report を返し、エラーとして ErrNoQualifyingPair を添えます。
func (s *Service) find(ctx context.Context, runID string, logger *zap.Logger, records []assignment.WorkAssignment) (*Report, error) {
	report := &Report{RunID: runID, Records: len(records)}

	best, ranking, err := s.finder.Best(ctx, records)
	if errors.Is(err, ErrNoQualifyingPair) {
		logger.Info("no qualifying pair", zap.Int("records", len(records)))
		return report, err
	}
	if err != nil {
		return nil, err
	}

	report.Best = best
	report.Ranking = ranking

	logger.Info("found longest collaboration",
		zap.Int("records", len(records)),
		zap.Int("employee_id_1", best.EmployeeID1),
		zap.Int("employee_id_2", best.EmployeeID2),
		zap.Ints("project_ids", best.ProjectIDs),
		zap.Int("days", best.Days),
	)
	return report, nil
}
