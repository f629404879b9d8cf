package dart

import (
	"encoding/json"
	"sort"

	"dartview/internal/pkg/table"
)

var indicatorColumns = []string{
	"사업연도", "보고서종류", "지표분류", "지표명", "지표값",
}

// GetFinancialIndicators sweeps the 단일회사 주요 재무지표 endpoint and
// returns long-format rows sorted by year, period authority, indicator
// group and indicator name. Indicator values are numeric-coerced.
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS003&apiId=2022001
func (c *DartClient) GetFinancialIndicators(corpCode string, yearFrom, yearTo int) (*table.Table, error) {
	t := table.New(indicatorColumns...)

	err := c.sweepPeriods("/fnlttSinglIndx.json", corpCode, yearFrom, yearTo, func(year, periodName string, item json.RawMessage) {
		t.Append(table.Row{
			"사업연도":  year,
			"보고서종류": periodName,
			"지표분류":  field(item, "idx_cl_nm"),
			"지표명":   field(item, "idx_nm"),
			"지표값":   table.CoerceNumber(field(item, "idx_val")),
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i], t.Rows[j]
		if ay, by := cellText(a["사업연도"]), cellText(b["사업연도"]); ay != by {
			return ay < by
		}
		if ap, bp := ReportPriority(cellText(a["보고서종류"])), ReportPriority(cellText(b["보고서종류"])); ap != bp {
			return ap < bp
		}
		if ag, bg := cellText(a["지표분류"]), cellText(b["지표분류"]); ag != bg {
			return ag < bg
		}
		return cellText(a["지표명"]) < cellText(b["지표명"])
	})

	return t.Reorder(indicatorColumns...), nil
}

// PivotFinancialIndicators reshapes the long-format indicator table to
// one row per (사업연도, 보고서종류) with indicator names as columns.
func PivotFinancialIndicators(t *table.Table) *table.Table {
	return table.Pivot(t, []string{"사업연도", "보고서종류"}, "지표명", "지표값")
}
