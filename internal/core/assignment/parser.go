package assignment

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	fieldCount    = 4
	nullEndMarker = "null"
	byteOrderMark = "\ufeff"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// ParseOptions は解析時のオプションです。
type ParseOptions struct {
	// DateFormat を指定すると既定のレイアウト一覧の代わりにこのフォーマットのみを使用します。
	DateFormat string
}

// Parser はカンマ区切りのテキストを WorkAssignment の列へ変換します。
type Parser struct {
	clock  Clock
	logger *zap.Logger
}

// NewParser は Parser を生成します。
func NewParser(clock Clock, logger *zap.Logger) *Parser {
	if clock == nil {
		clock = realClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{clock: clock, logger: logger}
}

// ParseFile は path のファイルを解析します。ファイルが存在しない場合は ErrMissingInput を返します。
func (p *Parser) ParseFile(ctx context.Context, path string, opts ParseOptions) ([]WorkAssignment, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("assignment: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrMissingInput, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assignment: open %s: %w", path, err)
	}
	defer f.Close()

	return p.Parse(ctx, f, opts)
}

// Parse は r から全行を読み込みます。いずれかの行が不正な場合は FormatError を返し、結果は返しません。
func (p *Parser) Parse(ctx context.Context, r io.Reader, opts ParseOptions) ([]WorkAssignment, error) {
	layouts := layoutsFor(opts.DateFormat)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fieldCount
	reader.TrimLeadingSpace = true

	var records []WorkAssignment
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &FormatError{Line: parseErr.StartLine, Err: parseErr.Err}
			}
			return nil, fmt.Errorf("assignment: read input: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(records) == 0 {
			fields[0] = strings.TrimPrefix(fields[0], byteOrderMark)
		}

		record, err := p.parseRecord(line, fields, layouts)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	p.logger.Debug("parsed work assignments", zap.Int("records", len(records)))
	return records, nil
}

func (p *Parser) parseRecord(line int, fields []string, layouts []string) (WorkAssignment, error) {
	employeeID, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return WorkAssignment{}, &FormatError{Line: line, Field: "employee id", Err: err}
	}

	projectID, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return WorkAssignment{}, &FormatError{Line: line, Field: "project id", Err: err}
	}

	start, err := parseDate(fields[2], layouts)
	if err != nil {
		return WorkAssignment{}, &FormatError{Line: line, Field: "start date", Err: fmt.Errorf("%q: %w", strings.TrimSpace(fields[2]), err)}
	}

	record := WorkAssignment{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		StartDate:  start,
		Line:       line,
	}

	rawEnd := strings.TrimSpace(fields[3])
	if strings.EqualFold(rawEnd, nullEndMarker) {
		return record, nil
	}

	end, err := parseDate(rawEnd, layouts)
	if err != nil {
		// 解釈できない終了日はエラーにせず処理日で補完する。
		end = normalizeDate(p.clock.Now())
		record.EndDateSubstituted = true
		p.logger.Warn("end date not recognized, substituting current date",
			zap.Int("line", line),
			zap.String("value", rawEnd),
			zap.Time("substituted", end),
		)
	}
	record.EndDate = &end

	return record, nil
}
