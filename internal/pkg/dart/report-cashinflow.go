package dart

import (
	"log"
	"net/url"
	"sort"

	"dartview/internal/pkg/table"
)

var cashInflowColumns = []string{
	"구분", "납입일", "증권종류", "발행금액", "자금용도", "출처",
}

// The three issuance-decision endpoints that bring cash in. Field names
// differ per endpoint, hence the fallback chains.
var cashInflowSources = []struct {
	path     string
	category string
	source   string
}{
	{"/piicDecsn.json", "주식", "유상증자결정"},
	{"/bdIsDecsn.json", "사채", "사채발행결정"},
	{"/drIsDecsn.json", "증권예탁증권", "증권예탁증권발행결정"},
}

var (
	issueAmountKeys  = []string{"piic_fta", "bd_fta", "dr_fta", "fta"}
	securityKindKeys = []string{"stock_knd", "bd_knd", "dr_knd", "se"}
	fundPurposeKeys  = []string{"fdpp_op", "fdpp_fclt", "fdpp_dtrp", "fdpp_ocsa", "fdpp_etc"}
)

// GetCashInflows merges stock, bond and depositary-receipt issuance
// decisions into one table sorted by payment date. A failing source is
// skipped; the result is empty only when every source is empty.
func (c *DartClient) GetCashInflows(corpCode, bgnDe, endDe string, descending bool) (*table.Table, error) {
	if c.key == "" {
		return nil, ErrMissingAPIKey
	}

	t := table.New(cashInflowColumns...)

	for _, src := range cashInflowSources {
		params := url.Values{}
		params.Set("corp_code", corpCode)
		params.Set("bgn_de", bgnDe)
		params.Set("end_de", endDe)

		items, err := c.getItems(src.path, params)
		if err != nil {
			log.Printf("dart: skipping %s: %v", src.path, err)
			continue
		}

		for _, item := range items {
			t.Append(table.Row{
				"구분":   src.category,
				"납입일":  table.CoerceDate(field(item, "pymd")),
				"증권종류": pick(item, securityKindKeys...),
				"발행금액": table.CoerceNumber(pick(item, issueAmountKeys...)),
				"자금용도": pick(item, fundPurposeKeys...),
				"출처":   src.source,
			})
		}
	}

	sort.SliceStable(t.Rows, func(i, j int) bool {
		a := cellText(t.Rows[i]["납입일"])
		b := cellText(t.Rows[j]["납입일"])
		if descending {
			return a > b
		}
		return a < b
	})

	return t.Reorder(cashInflowColumns...), nil
}
