package dart

import (
	"net/url"

	"dartview/internal/pkg/table"
)

var elestockColumns = []string{
	"공시접수일자", "보고자", "등기임원여부", "직급", "주식수", "지분율",
}

// GetExecutiveShareholdings fetches 임원ㆍ주요주주 소유보고 rows. Single
// call, no year sweep: the endpoint returns the full reporting history.
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS004&apiId=2019022
func (c *DartClient) GetExecutiveShareholdings(corpCode string) (*table.Table, error) {
	params := url.Values{}
	params.Set("corp_code", corpCode)

	items, err := c.getItems("/elestock.json", params)
	if err != nil {
		return nil, err
	}

	t := table.New(elestockColumns...)
	for _, item := range items {
		t.Append(table.Row{
			"공시접수일자": table.CoerceDate(field(item, "rcept_dt")),
			"보고자":    field(item, "repror"),
			"등기임원여부": field(item, "isu_exctv_rgist_at"),
			"직급":     field(item, "isu_exctv_ofcps"),
			"주식수":    field(item, "sp_stock_lmp_cnt"),
			"지분율":    field(item, "sp_stock_lmp_rate"),
		})
	}

	return t.Reorder(elestockColumns...), nil
}
