package collaboration

import (
	"fmt"
	"strconv"
	"strings"
)

// PairOverlap は同一プロジェクト上で二人の社員の在籍期間が重なった日数です。
// EmployeeID1 < EmployeeID2 となるよう向きを揃えて保持します。
type PairOverlap struct {
	EmployeeID1 int
	EmployeeID2 int
	ProjectID   int
	Days        int
}

func newPairOverlap(a, b, projectID, days int) PairOverlap {
	if b < a {
		a, b = b, a
	}
	return PairOverlap{EmployeeID1: a, EmployeeID2: b, ProjectID: projectID, Days: days}
}

// AggregatedPair は社員ペアごとに全プロジェクトの重複日数を合計した結果です。
type AggregatedPair struct {
	EmployeeID1 int
	EmployeeID2 int
	Days        int
	// ProjectIDs は昇順かつ重複なしです。
	ProjectIDs []int
}

// Legit は二つ以上のプロジェクトで一緒に働いたペアかどうかを返します。
func (p AggregatedPair) Legit() bool {
	return len(p.ProjectIDs) > 1
}

func (p AggregatedPair) String() string {
	ids := make([]string, len(p.ProjectIDs))
	for i, id := range p.ProjectIDs {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("Id1=%d Id2=%d ProjectIDs=%s Days=%d", p.EmployeeID1, p.EmployeeID2, strings.Join(ids, ","), p.Days)
}

// Report は 1 回の解析結果です。
type Report struct {
	RunID   string
	Records int
	// Best は該当ペアが無い場合 nil です。
	Best *AggregatedPair
	// Ranking は Legit なペアを Best と同じ順序で並べたものです。
	Ranking []AggregatedPair
}

func (r *Report) String() string {
	if r == nil || r.Best == nil {
		return noQualifyingPairMessage
	}
	return r.Best.String()
}

const noQualifyingPairMessage = "There are no legit pairs!"
