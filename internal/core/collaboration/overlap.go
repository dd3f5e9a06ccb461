package collaboration

import (
	"slices"
	"time"

	"github.com/ogurasousui/employee-pairs/internal/core/assignment"
)

const secondsPerDay = 24 * 60 * 60

// OverlapDays は閉区間 [start1, end1] と [start2, end2] の重なりを日数で返します。
// 遅い方の開始日から早い方の終了日までの差であり、重ならない場合は 0 以下になります。
func OverlapDays(start1, end1, start2, end2 time.Time) int {
	endMin := end1
	if end2.Before(end1) {
		endMin = end2
	}

	startMax := start1
	if start2.After(start1) {
		startMax = start2
	}

	// time.Duration は約 292 年で溢れるため、在籍中の終端日を含めて日番号で差を取る。
	return int(dayNumber(endMin) - dayNumber(startMax))
}

func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

type projectGroup struct {
	projectID int
	// employees は開始日順に並んだアサインを社員ごとにまとめたもので、社員は初出順です。
	employees [][]assignment.WorkAssignment
}

// groupByProject は二件以上のアサインを持つプロジェクトを初出順に返します。
func groupByProject(records []assignment.WorkAssignment) []projectGroup {
	byProject := make(map[int][]assignment.WorkAssignment)
	var order []int
	for _, r := range records {
		if _, ok := byProject[r.ProjectID]; !ok {
			order = append(order, r.ProjectID)
		}
		byProject[r.ProjectID] = append(byProject[r.ProjectID], r)
	}

	groups := make([]projectGroup, 0, len(order))
	for _, projectID := range order {
		members := byProject[projectID]
		if len(members) < 2 {
			continue
		}

		slices.SortStableFunc(members, func(a, b assignment.WorkAssignment) int {
			return a.StartDate.Compare(b.StartDate)
		})

		index := make(map[int]int)
		var employees [][]assignment.WorkAssignment
		for _, m := range members {
			i, ok := index[m.EmployeeID]
			if !ok {
				i = len(employees)
				index[m.EmployeeID] = i
				employees = append(employees, nil)
			}
			employees[i] = append(employees[i], m)
		}

		groups = append(groups, projectGroup{projectID: projectID, employees: employees})
	}
	return groups
}

// scan はプロジェクト内の社員同士を総当たりし、正の重複がある組み合わせを返します。
func (g projectGroup) scan() []PairOverlap {
	var overlaps []PairOverlap
	for i := 0; i < len(g.employees); i++ {
		for _, first := range g.employees[i] {
			start1, end1 := first.StartDate, first.ResolvedEnd()

			for j := i + 1; j < len(g.employees); j++ {
				for _, second := range g.employees[j] {
					start2, end2 := second.StartDate, second.ResolvedEnd()

					// 以降のアサインはさらに遅く始まるので重ならない。
					if start2.After(end1) {
						break
					}
					if start1.After(end2) || end1.Before(start2) {
						continue
					}

					if days := OverlapDays(start1, end1, start2, end2); days > 0 {
						overlaps = append(overlaps, newPairOverlap(first.EmployeeID, second.EmployeeID, first.ProjectID, days))
					}
				}
			}
		}
	}
	return overlaps
}
