package dart

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Several provider fields were renamed across DART API revisions. Each
// canonical column therefore carries an ordered fallback chain: the
// first present-and-non-blank candidate wins. The chains are data, not
// code, so the field tables stay reviewable in one place.
var (
	shareCountKeys = []string{"trmend_posesn_stock_co", "posesn_stock_co", "bsis_posesn_stock_co"}
	shareRatioKeys = []string{"trmend_qota_rt", "qota_rt", "bsis_qota_rt"}
	holderNameKeys = []string{"mxmm_shrholdr_nm", "nm"}
)

// pick walks the candidate keys and returns the first present,
// non-blank value, else the missing marker.
func pick(item json.RawMessage, keys ...string) any {
	for _, k := range keys {
		v := gjson.GetBytes(item, k)
		if !v.Exists() {
			continue
		}
		if strings.TrimSpace(v.String()) == "" {
			continue
		}
		return v.String()
	}
	return nil
}

// field reads a single provider field, mapping only absent keys to the
// missing marker. A present-but-empty value stays an empty string;
// blank-skipping belongs to the fallback chains alone.
func field(item json.RawMessage, key string) any {
	v := gjson.GetBytes(item, key)
	if !v.Exists() {
		return nil
	}
	return v.String()
}
