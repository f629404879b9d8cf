package dart

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
)

type ReportType string

const FIRST_QUARTER = ReportType("11013")   // 1분기
const HALF_YEAR = ReportType("11012")       // 반기
const THIRD_QUARTER = ReportType("11014")   // 3분기
const BUSINESS_REPORT = ReportType("11011") // 사업보고서

// sweepOrder is the request order within one fiscal year.
var sweepOrder = []ReportType{FIRST_QUARTER, HALF_YEAR, THIRD_QUARTER, BUSINESS_REPORT}

var reportNames = map[ReportType]string{
	FIRST_QUARTER:   "1분기보고서",
	HALF_YEAR:       "반기보고서",
	THIRD_QUARTER:   "3분기보고서",
	BUSINESS_REPORT: "사업보고서",
}

// reportPriority ranks period labels by authority; the annual filing
// supersedes the rest, quarterlies rank last.
var reportPriority = map[string]int{
	"사업보고서":  1,
	"3분기보고서": 2,
	"반기보고서":  3,
	"1분기보고서": 4,
}

// ReportPriority returns the tie-break rank of a period label. Unknown
// labels rank after every known one.
func ReportPriority(label string) int {
	if p, ok := reportPriority[label]; ok {
		return p
	}
	return len(reportPriority) + 1
}

// sweepPeriods fetches one (year, period) combination at a time across
// the requested range and hands every record to fn. A failed or empty
// call is logged and skipped: partial unavailability is the normal case
// for these endpoints, one bad period must not abort the report.
func (c *DartClient) sweepPeriods(path, corpCode string, yearFrom, yearTo int, fn func(year, periodName string, item json.RawMessage)) error {
	if c.key == "" {
		return ErrMissingAPIKey
	}

	for year := yearFrom; year <= yearTo; year++ {
		for _, rt := range sweepOrder {
			params := url.Values{}
			params.Set("corp_code", corpCode)
			params.Set("bsns_year", fmt.Sprint(year))
			params.Set("reprt_code", string(rt))

			items, err := c.getItems(path, params)
			if err != nil {
				log.Printf("dart: skipping %s %d/%s: %v", path, year, reportNames[rt], err)
				continue
			}

			for _, item := range items {
				fn(fmt.Sprint(year), reportNames[rt], item)
			}
		}
	}

	return nil
}
