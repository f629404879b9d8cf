package dart

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DirectoryEntry is one company record from the corpCode directory.
// stock_code is blank for unlisted companies.
type DirectoryEntry struct {
	CorpCode  string `xml:"corp_code"`
	CorpName  string `xml:"corp_name"`
	StockCode string `xml:"stock_code"`
}

type corpCodeXML struct {
	XMLName xml.Name         `xml:"result"`
	Entries []DirectoryEntry `xml:"list"`
}

// GetCompanies downloads the full company directory.
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS001&apiId=2019018
//
// The response is a zip archive holding a single CORPCODE.xml; if the
// provider ever ships more than one entry, only the first is read.
func (c *DartClient) GetCompanies() ([]DirectoryEntry, error) {
	if c.key == "" {
		return nil, ErrMissingAPIKey
	}

	u, _ := url.Parse(baseURL + "/corpCode.xml")
	q := u.Query()
	q.Set("crtfc_key", c.key)
	u.RawQuery = q.Encode()

	resp, err := c.client.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DART error %d: %s", resp.StatusCode, string(buf))
	}

	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, fmt.Errorf("corp code archive is corrupt: %w", err)
	}

	if len(zr.File) == 0 {
		return nil, fmt.Errorf("corp code archive is corrupt: no entries")
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("corp code archive is corrupt: %w", err)
	}
	defer rc.Close()

	xmlBuf := new(bytes.Buffer)
	if _, err := io.Copy(xmlBuf, rc); err != nil {
		return nil, fmt.Errorf("corp code archive is corrupt: %w", err)
	}

	dec := xml.NewDecoder(bytes.NewReader(xmlBuf.Bytes()))
	var file corpCodeXML
	if err := dec.Decode(&file); err != nil {
		return nil, err
	}

	// a record missing a field keeps the zero value; the directory layer
	// turns blank fields into missing markers
	for i := range file.Entries {
		e := &file.Entries[i]
		e.CorpCode = strings.TrimSpace(e.CorpCode)
		e.CorpName = strings.TrimSpace(e.CorpName)
		e.StockCode = strings.TrimSpace(e.StockCode)
	}

	return file.Entries, nil
}
