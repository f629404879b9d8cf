package dart

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const baseURL = "https://opendart.fss.or.kr/api"

// statusOK: 정상
const statusOK = "000"

const defaultTimeout = 30 * time.Second

type DartClient struct {
	key    string
	client *http.Client
}

func New(apiKey string) *DartClient {
	return &DartClient{
		key: apiKey,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					// DART는 TLS1.2 호환이 확실 — TLS1.2로 고정해서 협상 단순화
					MinVersion: tls.VersionTLS12,
					MaxVersion: tls.VersionTLS12,

					// SNI를 명시 (보통 자동이지만, 명시로 문제 회피)
					ServerName: "opendart.fss.or.kr",

					// 일부 구형 서버 대비 호환 암호군 지정 (필요 시)
					CipherSuites: []uint16{
						tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
						tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
						tls.TLS_RSA_WITH_AES_128_GCM_SHA256,
						tls.TLS_RSA_WITH_AES_256_GCM_SHA384,
					},
				},
			},
			Timeout: defaultTimeout,
		},
	}
}

// UseDefaultClient swaps in http.DefaultClient so tests can install a
// mock transport.
func (c *DartClient) UseDefaultClient() {
	c.client = http.DefaultClient
}

// ErrMissingAPIKey is returned before any network call when the
// credential is empty.
var ErrMissingAPIKey = errors.New("DART API key is empty")

// ProviderError is an application-level rejection: HTTP 200 with a
// non-"000" status in the payload. Callers inside a period sweep treat
// it as "no data for that period".
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("DART error %s: %s", e.Code, e.Message)
}

// itemList accepts the provider's "list" field, which is an array most
// of the time but a bare object when there is a single record.
type itemList []json.RawMessage

func (l *itemList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}

	if b[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var item json.RawMessage
	if err := json.Unmarshal(b, &item); err != nil {
		return err
	}
	*l = itemList{item}
	return nil
}

type listEnvelope struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	List    itemList `json:"list"`
}

func (c *DartClient) buildURL(path string, params url.Values) (string, error) {
	if c.key == "" {
		return "", ErrMissingAPIKey
	}

	u, err := url.Parse(baseURL + path)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("crtfc_key", c.key) // API Key
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// getItems issues a single GET and returns the raw records of the
// "list" field. One attempt, no retries.
func (c *DartClient) getItems(path string, params url.Values) ([]json.RawMessage, error) {
	u, err := c.buildURL(path, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DART error %d: %s", resp.StatusCode, resp.Status)
	}

	var out listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	if out.Status != statusOK {
		return nil, &ProviderError{Code: out.Status, Message: out.Message}
	}

	return out.List, nil
}

// getObject is for endpoints whose record fields sit at the top level of
// the payload next to status/message (company.json).
func (c *DartClient) getObject(path string, params url.Values) (json.RawMessage, error) {
	u, err := c.buildURL(path, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DART error %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	if envelope.Status != statusOK {
		return nil, &ProviderError{Code: envelope.Status, Message: envelope.Message}
	}

	return json.RawMessage(body), nil
}
