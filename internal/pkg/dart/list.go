package dart

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type Filing struct {
	RceptNo  string `json:"rcept_no"`
	CorpCode string `json:"corp_code"`
	CorpName string `json:"corp_name"`
	ReportNm string `json:"report_nm"`
	RceptDt  string `json:"rcept_dt"`
	FlrNm    string `json:"flr_nm"`
	Rm       string `json:"rm"`
}

type filingsResp struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	PageCnt   int      `json:"page_count"`
	Total     int      `json:"total_count"`
	PageNo    int      `json:"page_no"`
	TotalPage int      `json:"total_page"`
	List      []Filing `json:"list"`
}

// 공시 목록 조회
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS001&apiId=2019001
func (c *DartClient) getFilingsPage(corpCode, bgnDe, endDe string, pageNo, pageCount int) (*filingsResp, error) {
	if c.key == "" {
		return nil, ErrMissingAPIKey
	}

	u, _ := url.Parse(baseURL + "/list.json")
	q := u.Query()
	q.Set("crtfc_key", c.key)    // API Key
	q.Set("corp_code", corpCode) // 8자리 기업코드(예: 삼성전자 00126380)

	if bgnDe != "" {
		q.Set("bgn_de", bgnDe) // YYYYMMDD, begin date
	}
	if endDe != "" {
		q.Set("end_de", endDe) // YYYYMMDD, end date
	}
	if pageNo > 0 {
		q.Set("page_no", fmt.Sprint(pageNo))
	}
	// page count, 10 by default, max value is 100
	if pageCount > 0 {
		q.Set("page_count", fmt.Sprint(pageCount))
	}
	u.RawQuery = q.Encode()

	resp, err := c.client.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DART error %d: %s", resp.StatusCode, resp.Status)
	}

	var out filingsResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	if out.Status != statusOK {
		return nil, &ProviderError{Code: out.Status, Message: out.Message}
	}

	return &out, nil
}

// GetFilings returns every disclosure filed by a company in the date
// range, following pagination.
func (c *DartClient) GetFilings(corpCode, bgnDe, endDe string) ([]Filing, error) {
	page := 1
	size := 100

	res, err := c.getFilingsPage(corpCode, bgnDe, endDe, page, size)
	if err != nil {
		return nil, err
	}

	for page < res.TotalPage {
		page++
		next, err := c.getFilingsPage(corpCode, bgnDe, endDe, page, size)
		if err != nil {
			return nil, err
		}
		res.List = append(res.List, next.List...)
	}

	return res.List, nil
}
