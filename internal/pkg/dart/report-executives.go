package dart

import (
	"encoding/json"
	"sort"
	"strconv"

	"dartview/internal/pkg/table"
)

var executiveColumns = []string{
	"사업연도", "보고서종류", "성명", "출생년월", "직위", "등기임원여부", "상근여부",
	"담당업무", "주요경력", "최대주주와의 관계", "재직기간", "임기만료일",
}

type executiveRow struct {
	row      table.Row
	name     string
	birthYM  string
	year     int
	priority int
}

// GetExecutives sweeps the 임원현황 endpoint and keeps, per (성명,
// 출생년월), only the row from the most recent fiscal year; within the
// same year the more authoritative period wins (사업보고서 > 3분기 >
// 반기 > 1분기).
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS002&apiId=2019010
func (c *DartClient) GetExecutives(corpCode string, yearFrom, yearTo int) (*table.Table, error) {
	var rows []executiveRow

	err := c.sweepPeriods("/exctvSttus.json", corpCode, yearFrom, yearTo, func(year, periodName string, item json.RawMessage) {
		row := table.Row{
			"사업연도":      year,
			"보고서종류":     periodName,
			"성명":        field(item, "nm"),
			"출생년월":      field(item, "birth_ym"),
			"직위":        field(item, "ofcps"),
			"등기임원여부":    field(item, "rgist_exctv_at"),
			"상근여부":      field(item, "fte_at"),
			"담당업무":      field(item, "chrg_job"),
			"주요경력":      field(item, "main_career"),
			"최대주주와의 관계": field(item, "mxmm_shrholdr_relate"),
			"재직기간":      field(item, "hffc_pd"),
			"임기만료일":     table.CoerceDate(field(item, "tenure_end_on")),
		}

		y, _ := strconv.Atoi(year)
		rows = append(rows, executiveRow{
			row:      row,
			name:     cellText(row["성명"]),
			birthYM:  cellText(row["출생년월"]),
			year:     y,
			priority: ReportPriority(periodName),
		})
	})
	if err != nil {
		return nil, err
	}

	// most recent and most authoritative first, then keep the first
	// row seen per person
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.name != b.name {
			return a.name < b.name
		}
		if a.birthYM != b.birthYM {
			return a.birthYM < b.birthYM
		}
		if a.year != b.year {
			return a.year > b.year
		}
		return a.priority < b.priority
	})

	t := table.New(executiveColumns...)
	seen := map[[2]string]bool{}
	for _, r := range rows {
		key := [2]string{r.name, r.birthYM}
		if seen[key] {
			continue
		}
		seen[key] = true
		t.Append(r.row)
	}

	return t.Reorder(executiveColumns...), nil
}

func cellText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
