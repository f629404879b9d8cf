package dart_test

import (
	"fmt"

	"dartview/internal/pkg/dart"
	"dartview/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const noDataRes = `{ "status": "013", "message": "조회된 데이타가 없습니다." }`

func mockPeriod(path, corpCode string, year int, reprtCode, body string) {
	p := fmt.Sprintf("%s?corp_code=%s&bsns_year=%d&reprt_code=%s", path, corpCode, year, reprtCode)
	testhelpers.New("https://opendart.fss.or.kr").
		Get(p).Reply(200).
		BodyString(body).
		Header("Content-Type", "application/json")
}

func execItem(name, birth, title string) string {
	return fmt.Sprintf(`{
		"nm": %q,
		"birth_ym": %q,
		"ofcps": %q,
		"rgist_exctv_at": "등기임원",
		"fte_at": "상근",
		"chrg_job": "경영총괄",
		"main_career": "전 무언가",
		"mxmm_shrholdr_relate": "계열회사 임원",
		"hffc_pd": "3년",
		"tenure_end_on": "20261231"
	}`, name, birth, title)
}

var _ = Describe("GetExecutives", func() {
	var client *dart.DartClient
	const corpCode = "00126380"
	const path = "/api/exctvSttus.json"

	BeforeEach(func() {
		testhelpers.Activate()

		client = dart.New("test-dart-api-key")
		client.UseDefaultClient()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	It("keeps only the rows of succeeding periods", func() {
		// Q1 and Q3 rejected, half-year empty, annual succeeds
		mockPeriod(path, corpCode, 2022, "11013", noDataRes)
		mockPeriod(path, corpCode, 2022, "11012", `{ "status":"000", "message":"정상", "list": [] }`)
		mockPeriod(path, corpCode, 2022, "11014", noDataRes)
		mockPeriod(path, corpCode, 2022, "11011", fmt.Sprintf(`{ "status":"000", "message":"정상", "list": [%s] }`, execItem("홍길동", "1970.01", "대표이사")))

		t, err := client.GetExecutives(corpCode, 2022, 2022)
		Expect(err).NotTo(HaveOccurred())
		Expect(testhelpers.IsDone()).To(BeTrue())

		Expect(t.Len()).To(Equal(1))
		Expect(t.Rows[0]["보고서종류"]).To(Equal("사업보고서"))
		Expect(t.Rows[0]["성명"]).To(Equal("홍길동"))
		Expect(t.Rows[0]["임기만료일"]).To(Equal("2026-12-31"))
	})

	It("keeps the most recent year per (name, birth)", func() {
		mockPeriod(path, corpCode, 2021, "11013", noDataRes)
		mockPeriod(path, corpCode, 2021, "11012", noDataRes)
		mockPeriod(path, corpCode, 2021, "11014", noDataRes)
		mockPeriod(path, corpCode, 2021, "11011", fmt.Sprintf(`{ "status":"000", "message":"정상", "list": [%s] }`, execItem("홍길동", "1970.01", "이사")))

		mockPeriod(path, corpCode, 2022, "11013", fmt.Sprintf(`{ "status":"000", "message":"정상", "list": [%s] }`, execItem("홍길동", "1970.01", "대표이사")))
		mockPeriod(path, corpCode, 2022, "11012", noDataRes)
		mockPeriod(path, corpCode, 2022, "11014", noDataRes)
		mockPeriod(path, corpCode, 2022, "11011", noDataRes)

		t, err := client.GetExecutives(corpCode, 2021, 2022)
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Len()).To(Equal(1))
		Expect(t.Rows[0]["사업연도"]).To(Equal("2022"))
		Expect(t.Rows[0]["보고서종류"]).To(Equal("1분기보고서"))
		Expect(t.Rows[0]["직위"]).To(Equal("대표이사"))
	})

	It("prefers the more authoritative period within one year", func() {
		mockPeriod(path, corpCode, 2022, "11013", fmt.Sprintf(`{ "status":"000", "message":"정상", "list": [%s] }`, execItem("홍길동", "1970.01", "이사")))
		mockPeriod(path, corpCode, 2022, "11012", noDataRes)
		mockPeriod(path, corpCode, 2022, "11014", noDataRes)
		mockPeriod(path, corpCode, 2022, "11011", fmt.Sprintf(`{ "status":"000", "message":"정상", "list": [%s] }`, execItem("홍길동", "1970.01", "대표이사")))

		t, err := client.GetExecutives(corpCode, 2022, 2022)
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Len()).To(Equal(1))
		Expect(t.Rows[0]["보고서종류"]).To(Equal("사업보고서"))
		Expect(t.Rows[0]["직위"]).To(Equal("대표이사"))
	})

	It("treats same-name different-birth people as distinct", func() {
		items := execItem("홍길동", "1970.01", "대표이사") + "," + execItem("홍길동", "1985.07", "사외이사")
		mockPeriod(path, corpCode, 2022, "11013", noDataRes)
		mockPeriod(path, corpCode, 2022, "11012", noDataRes)
		mockPeriod(path, corpCode, 2022, "11014", noDataRes)
		mockPeriod(path, corpCode, 2022, "11011", fmt.Sprintf(`{ "status":"000", "message":"정상", "list": [%s] }`, items))

		t, err := client.GetExecutives(corpCode, 2022, 2022)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(2))
	})
})
