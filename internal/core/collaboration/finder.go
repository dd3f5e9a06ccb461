package collaboration

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ogurasousui/employee-pairs/internal/core/assignment"
)

// FinderOptions は Finder の挙動を調整します。
type FinderOptions struct {
	// Workers が 2 以上の場合、プロジェクト単位の走査を並行に行います。
	Workers int
}

// Finder は最も長く一緒に働いた社員ペアを探します。
type Finder struct {
	workers int
	logger  *zap.Logger
}

// NewFinder は Finder を生成します。
func NewFinder(opts FinderOptions, logger *zap.Logger) (*Finder, error) {
	if opts.Workers < 0 {
		return nil, fmt.Errorf("workers %d: %w", opts.Workers, ErrInvalidWorkers)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{workers: opts.Workers, logger: logger}, nil
}

// Overlaps はプロジェクトごとに在籍期間の重なりを列挙します。
// 並行走査の場合もプロジェクトの初出順に結果を連結するため、出力は逐次走査と同じです。
func (f *Finder) Overlaps(ctx context.Context, records []assignment.WorkAssignment) ([]PairOverlap, error) {
	groups := groupByProject(records)
	results := make([][]PairOverlap, len(groups))

	if f.workers <= 1 {
		for i, g := range groups {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = g.scan()
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(f.workers)
		for i, g := range groups {
			i, g := i, g
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				results[i] = g.scan()
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	var overlaps []PairOverlap
	for _, r := range results {
		overlaps = append(overlaps, r...)
	}

	f.logger.Debug("scanned project groups",
		zap.Int("projects", len(groups)),
		zap.Int("overlaps", len(overlaps)),
		zap.Int("workers", f.workers),
	)
	return overlaps, nil
}

type pairKey struct {
	employeeID1 int
	employeeID2 int
}

type pairProjectKey struct {
	pairKey
	projectID int
}

// Aggregate は重なりをまずペア・プロジェクト単位で、次にペア単位で合計します。
// 結果はペアの初出順です。
func Aggregate(overlaps []PairOverlap) []AggregatedPair {
	perProject := make(map[pairProjectKey]int)
	var projectOrder []pairProjectKey
	for _, o := range overlaps {
		key := pairProjectKey{pairKey: pairKey{o.EmployeeID1, o.EmployeeID2}, projectID: o.ProjectID}
		if _, ok := perProject[key]; !ok {
			projectOrder = append(projectOrder, key)
		}
		perProject[key] += o.Days
	}

	index := make(map[pairKey]int)
	var pairs []AggregatedPair
	for _, key := range projectOrder {
		i, ok := index[key.pairKey]
		if !ok {
			i = len(pairs)
			index[key.pairKey] = i
			pairs = append(pairs, AggregatedPair{EmployeeID1: key.employeeID1, EmployeeID2: key.employeeID2})
		}
		pairs[i].Days += perProject[key]
		pairs[i].ProjectIDs = append(pairs[i].ProjectIDs, key.projectID)
	}

	for i := range pairs {
		slices.Sort(pairs[i].ProjectIDs)
	}
	return pairs
}

// Rank は Legit なペアのみを重複日数の降順に並べます。
// 同日数の場合は EmployeeID1、EmployeeID2 の昇順です。
func Rank(pairs []AggregatedPair) []AggregatedPair {
	var legit []AggregatedPair
	for _, p := range pairs {
		if p.Legit() {
			legit = append(legit, p)
		}
	}

	slices.SortFunc(legit, func(a, b AggregatedPair) int {
		if c := cmp.Compare(b.Days, a.Days); c != 0 {
			return c
		}
		if c := cmp.Compare(a.EmployeeID1, b.EmployeeID1); c != 0 {
			return c
		}
		return cmp.Compare(a.EmployeeID2, b.EmployeeID2)
	})
	return legit
}

// Best は最も長く一緒に働いた Legit なペアと、その順位表を返します。
// 該当するペアが無い場合は ErrNoQualifyingPair を返します。
func (f *Finder) Best(ctx context.Context, records []assignment.WorkAssignment) (*AggregatedPair, []AggregatedPair, error) {
	overlaps, err := f.Overlaps(ctx, records)
	if err != nil {
		return nil, nil, err
	}

	ranking := Rank(Aggregate(overlaps))
	if len(ranking) == 0 {
		return nil, nil, ErrNoQualifyingPair
	}

	best := ranking[0]
	best.ProjectIDs = slices.Clone(best.ProjectIDs)
	return &best, ranking, nil
}
