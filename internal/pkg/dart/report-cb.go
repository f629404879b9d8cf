package dart

import (
	"net/url"

	"dartview/internal/pkg/table"
)

var cbColumns = []string{
	"접수번호", "CB회차", "CB종류", "발행방법", "권면총액",
	"운영자금목적", "채무상환목적", "타법인증권취득목적", "기타목적",
	"발행일", "만기일", "표시이자율", "만기이자율",
	"전환비율", "주당 전환가액", "전환발행주식수",
	"전환청구 시작일", "전환청구 종료일",
	"전환가액 조정", "전환가액 조정 근거", "전환가액 조정 하한",
}

// GetConvertibleBonds fetches 전환사채권 발행결정 rows for the date range.
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS005&apiId=2020023
func (c *DartClient) GetConvertibleBonds(corpCode, bgnDe, endDe string) (*table.Table, error) {
	params := url.Values{}
	params.Set("corp_code", corpCode)
	params.Set("bgn_de", bgnDe)
	params.Set("end_de", endDe)

	items, err := c.getItems("/cvbdIsDecsn.json", params)
	if err != nil {
		return nil, err
	}

	t := table.New(cbColumns...)
	for _, item := range items {
		t.Append(table.Row{
			"접수번호":        field(item, "rcept_no"),
			"CB회차":        field(item, "bd_tm"),
			"CB종류":        field(item, "cb_knd"),
			"발행방법":        field(item, "bdis_mthn"),
			"권면총액":        field(item, "bd_fta"),
			"운영자금목적":      field(item, "fdpp_op"),
			"채무상환목적":      field(item, "fdpp_dtrp"),
			"타법인증권취득목적":   field(item, "fdpp_ocsa"),
			"기타목적":        field(item, "fdpp_etc"),
			"발행일":         table.CoerceDate(field(item, "pymd")),
			"만기일":         table.CoerceDate(field(item, "bd_mtd")),
			"표시이자율":       field(item, "bd_intr_ex"),
			"만기이자율":       field(item, "bd_intr_sf"),
			"전환비율":        field(item, "cv_rt"),
			"주당 전환가액":     field(item, "cv_prc"),
			"전환발행주식수":     field(item, "cvisstk_tisstk_vs"),
			"전환청구 시작일":    table.CoerceDate(field(item, "cvrqpd_bgdm")),
			"전환청구 종료일":    table.CoerceDate(field(item, "cvrqpd_edd")),
			"전환가액 조정":     field(item, "act_mktprcfl_cvprc_lwtrsprc"),
			"전환가액 조정 근거":  field(item, "act_mktprcfl_cvprc_lwtrsprc_bs"),
			"전환가액 조정 하한":  field(item, "rmislmt_lt70p"),
		})
	}

	return t.Reorder(cbColumns...), nil
}
