package directory

import (
	"strings"

	"dartview/internal/pkg/dart"
)

// Company is one immutable directory record. StockCode is empty for
// unlisted companies.
type Company struct {
	CorpCode  string `json:"corp_code"`
	CorpName  string `json:"corp_name"`
	StockCode string `json:"stock_code"`

	lcName string // precomputed for case-insensitive matching
}

// Directory is a snapshot of the corpCode listing, ordered as delivered
// by the provider. Never mutated after construction.
type Directory struct {
	companies []Company
}

// MaxMatches bounds resolver output; overflow drops from the tail of
// the partial-match group, never from the exact-match group.
const MaxMatches = 200

func NewDirectory(entries []dart.DirectoryEntry) *Directory {
	companies := make([]Company, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.CorpName)
		companies = append(companies, Company{
			CorpCode:  strings.TrimSpace(e.CorpCode),
			CorpName:  name,
			StockCode: strings.TrimSpace(e.StockCode),
			lcName:    strings.ToLower(name),
		})
	}
	return &Directory{companies: companies}
}

func (d *Directory) Len() int {
	return len(d.companies)
}

func (d *Directory) Companies() []Company {
	return d.companies
}

// Resolve matches free text against company names: exact matches first,
// then substring matches, directory order preserved within each group.
// An empty or whitespace-only query matches nothing.
func (d *Directory) Resolve(query string) []Company {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var exact, partial []Company
	for _, c := range d.companies {
		switch {
		case c.lcName == q:
			exact = append(exact, c)
		case strings.Contains(c.lcName, q):
			partial = append(partial, c)
		}
	}

	if len(exact) >= MaxMatches {
		return exact
	}
	if len(exact)+len(partial) > MaxMatches {
		partial = partial[:MaxMatches-len(exact)]
	}
	return append(exact, partial...)
}
