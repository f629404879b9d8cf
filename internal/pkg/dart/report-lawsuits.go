package dart

import (
	"log"
	"net/url"
	"strings"

	"dartview/internal/pkg/table"
)

var lawsuitColumns = []string{
	"접수번호", "사건명", "원고·피고", "청구내용", "관할법원", "향후대책", "제기일", "확정일",
}

// GetLawsuits fetches 소송 등의 제기 rows from the dedicated major-event
// endpoint for the date range.
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS005&apiId=2020038
func (c *DartClient) GetLawsuits(corpCode, bgnDe, endDe string) (*table.Table, error) {
	params := url.Values{}
	params.Set("corp_code", corpCode)
	params.Set("bgn_de", bgnDe)
	params.Set("end_de", endDe)

	items, err := c.getItems("/lwstIs.json", params)
	if err != nil {
		return nil, err
	}

	t := table.New(lawsuitColumns...)
	for _, item := range items {
		t.Append(table.Row{
			"접수번호":  field(item, "rcept_no"),
			"사건명":   field(item, "icnm"),
			"원고·피고": field(item, "ac_ap"),
			"청구내용":  field(item, "rq_cn"),
			"관할법원":  field(item, "cpct"),
			"향후대책":  field(item, "ft_ctp"),
			"제기일":   table.CoerceDate(field(item, "lgd")),
			"확정일":   table.CoerceDate(field(item, "cfd")),
		})
	}

	return t.Reorder(lawsuitColumns...), nil
}

// GetLawsuitsMerged unions the dedicated lawsuit endpoint with lawsuit
// filings found in the general disclosure list, mapped onto the same
// schema. Rows are deduplicated by 접수번호 and the dedicated endpoint
// wins. Either source failing is logged and skipped; the result is
// empty only when both are empty. The major-event endpoint only covers
// lawsuits reported in 주요사항보고서, which is why the disclosure list
// is swept as well.
func (c *DartClient) GetLawsuitsMerged(corpCode, bgnDe, endDe string) (*table.Table, error) {
	if c.key == "" {
		return nil, ErrMissingAPIKey
	}

	t, err := c.GetLawsuits(corpCode, bgnDe, endDe)
	if err != nil {
		// a rejection here is the normal case for companies whose
		// lawsuits never went through a 주요사항보고서 filing
		log.Printf("dart: skipping /lwstIs.json: %v", err)
		t = table.New(lawsuitColumns...)
	}

	seen := map[string]bool{}
	for _, row := range t.Rows {
		if no, ok := row["접수번호"].(string); ok {
			seen[no] = true
		}
	}

	filings, err := c.GetFilings(corpCode, bgnDe, endDe)
	if err != nil {
		log.Printf("dart: lawsuit merge falling back to single source: %v", err)
		return t, nil
	}

	for _, f := range filings {
		if !strings.Contains(f.ReportNm, "소송") {
			continue
		}
		if seen[f.RceptNo] {
			continue
		}
		seen[f.RceptNo] = true

		t.Append(table.Row{
			"접수번호":  f.RceptNo,
			"사건명":   f.ReportNm,
			"원고·피고": nil,
			"청구내용":  nil,
			"관할법원":  nil,
			"향후대책":  nil,
			"제기일":   table.NormalizeDate(f.RceptDt),
			"확정일":   nil,
		})
	}

	return t, nil
}
