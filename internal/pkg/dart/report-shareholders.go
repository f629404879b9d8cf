package dart

import (
	"encoding/json"

	"dartview/internal/pkg/table"
)

var shareholderColumns = []string{
	"사업연도", "보고서종류", "변동일", "최대주주명", "소유주식수", "지분율", "변동사유",
}

// GetMajorShareholders sweeps the 최대주주 변동현황 endpoint across every
// (year, period) pair in the range and appends all rows in call order.
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS002&apiId=2019009
func (c *DartClient) GetMajorShareholders(corpCode string, yearFrom, yearTo int) (*table.Table, error) {
	t := table.New(shareholderColumns...)

	err := c.sweepPeriods("/hyslrChgSttus.json", corpCode, yearFrom, yearTo, func(year, periodName string, item json.RawMessage) {
		t.Append(table.Row{
			"사업연도":  year,
			"보고서종류": periodName,
			"변동일":   table.CoerceDate(field(item, "change_on")),
			"최대주주명": pick(item, holderNameKeys...),
			"소유주식수": pick(item, shareCountKeys...),
			"지분율":   pick(item, shareRatioKeys...),
			"변동사유":  field(item, "change_cause"),
		})
	})
	if err != nil {
		return nil, err
	}

	return t.Reorder(shareholderColumns...), nil
}
