package dart

import (
	"net/url"
	"strings"

	"dartview/internal/pkg/table"
)

var profileColumns = []string{
	"회사명", "종목코드", "법인등록번호", "사업자등록번호", "업종코드",
	"설립일", "대표자명", "법인구분", "주소", "홈페이지", "결산월",
}

// corp_cls 코드 → 시장구분. Unknown codes pass through verbatim.
var corpClsNames = map[string]string{
	"Y": "유가증권",
	"K": "코스닥",
	"N": "코넥스",
	"E": "기타법인",
}

// GetCorpProfile fetches the corporate profile (기업개황).
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS001&apiId=2019002
func (c *DartClient) GetCorpProfile(corpCode string) (*table.Table, error) {
	params := url.Values{}
	params.Set("corp_code", corpCode)

	obj, err := c.getObject("/company.json", params)
	if err != nil {
		return nil, err
	}

	corpCls := field(obj, "corp_cls")
	if raw, ok := corpCls.(string); ok {
		code := strings.ToUpper(strings.TrimSpace(raw))
		corpCls = code
		if name, ok := corpClsNames[code]; ok {
			corpCls = name
		}
	}

	row := table.Row{
		"회사명":     field(obj, "corp_name"),
		"종목코드":    field(obj, "stock_code"),
		"법인등록번호":  field(obj, "jurir_no"),
		"사업자등록번호": field(obj, "bizr_no"),
		"업종코드":    field(obj, "induty_code"),
		"설립일":     table.CoerceDate(field(obj, "est_dt")),
		"대표자명":    field(obj, "ceo_nm"),
		"법인구분":    corpCls,
		"주소":      field(obj, "adres"),
		"홈페이지":    field(obj, "hm_url"),
		"결산월":     field(obj, "acc_mt"),
	}

	t := table.New(profileColumns...)
	t.Append(row)
	return t.Reorder(profileColumns...), nil
}
