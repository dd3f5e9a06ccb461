package assignment

import "time"

// OpenEnded は終了日が未設定 (在籍中) のアサインを区間計算する際に用いる終端日です。
var OpenEnded = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// WorkAssignment は社員がプロジェクトに参加していた期間を表すレコードです。
type WorkAssignment struct {
	EmployeeID int
	ProjectID  int
	StartDate  time.Time
	// EndDate が nil の場合は在籍中を意味します。
	EndDate *time.Time
	// EndDateSubstituted は終了日を解釈できず処理日時で補完したことを示します。
	EndDateSubstituted bool
	// Line は入力上の行番号 (1 始まり) です。
	Line int
}

// IsOpenEnded は終了日が未設定かどうかを返します。
func (a WorkAssignment) IsOpenEnded() bool {
	return a.EndDate == nil
}

// ResolvedEnd は区間計算に用いる終了日を返します。在籍中の場合は OpenEnded です。
func (a WorkAssignment) ResolvedEnd() time.Time {
	if a.EndDate == nil {
		return OpenEnded
	}
	return *a.EndDate
}
