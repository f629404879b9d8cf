package report

import (
	"fmt"

	"dartview/internal/pkg/dart"
	"dartview/internal/pkg/table"
)

// Kind is the closed set of report types the UI can request.
type Kind int

const (
	KindCorpProfile Kind = iota
	KindMajorShareholders
	KindExecutives
	KindExecutiveShareholdings
	KindConvertibleBonds
	KindLawsuits
	KindCashInflows
	KindFinancialIndicators
)

var kindSlugs = map[string]Kind{
	"profile":            KindCorpProfile,
	"shareholders":       KindMajorShareholders,
	"executives":         KindExecutives,
	"executive-holdings": KindExecutiveShareholdings,
	"convertible-bonds":  KindConvertibleBonds,
	"lawsuits":           KindLawsuits,
	"cash-inflows":       KindCashInflows,
	"indicators":         KindFinancialIndicators,
}

var kindNames = map[Kind]string{
	KindCorpProfile:            "기업개황",
	KindMajorShareholders:      "최대주주 변동현황",
	KindExecutives:             "임원현황",
	KindExecutiveShareholdings: "임원 주식소유",
	KindConvertibleBonds:       "전환사채 발행결정",
	KindLawsuits:               "소송현황",
	KindCashInflows:            "현금유입 요약",
	KindFinancialIndicators:    "주요 재무지표",
}

// ParseKind maps a URL slug to its report kind.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindSlugs[s]
	return k, ok
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Query identifies one report computation. It doubles as the cache
// key: all fields are scalar and comparable, and the credential is
// part of the key so two users never share a cached table.
type Query struct {
	Kind       Kind
	CorpCode   string
	Credential string
	YearFrom   int
	YearTo     int
	Descending bool
	Pivot      bool
}

func (q Query) beginDate() string {
	return fmt.Sprintf("%04d0101", q.YearFrom)
}

func (q Query) endDate() string {
	return fmt.Sprintf("%04d1231", q.YearTo)
}

// Run executes the query against a client built from the query's
// credential. Dispatch is a structured match over the closed kind set.
func Run(c *dart.DartClient, q Query) (*table.Table, error) {
	switch q.Kind {
	case KindCorpProfile:
		return c.GetCorpProfile(q.CorpCode)
	case KindMajorShareholders:
		return c.GetMajorShareholders(q.CorpCode, q.YearFrom, q.YearTo)
	case KindExecutives:
		return c.GetExecutives(q.CorpCode, q.YearFrom, q.YearTo)
	case KindExecutiveShareholdings:
		return c.GetExecutiveShareholdings(q.CorpCode)
	case KindConvertibleBonds:
		return c.GetConvertibleBonds(q.CorpCode, q.beginDate(), q.endDate())
	case KindLawsuits:
		return c.GetLawsuitsMerged(q.CorpCode, q.beginDate(), q.endDate())
	case KindCashInflows:
		return c.GetCashInflows(q.CorpCode, q.beginDate(), q.endDate(), q.Descending)
	case KindFinancialIndicators:
		t, err := c.GetFinancialIndicators(q.CorpCode, q.YearFrom, q.YearTo)
		if err != nil {
			return nil, err
		}
		if q.Pivot {
			t = dart.PivotFinancialIndicators(t)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown report kind %d", q.Kind)
	}
}
