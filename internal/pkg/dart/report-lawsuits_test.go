package dart_test

import (
	"dartview/internal/pkg/dart"
	"dartview/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetLawsuitsMerged", func() {
	var client *dart.DartClient
	const corpCode = "00126380"

	lwstRes := `{
		"status": "000", "message": "정상",
		"list": [
			{
				"rcept_no": "20220601000123",
				"icnm": "손해배상 청구 소송",
				"ac_ap": "원고: 주주 외 3인 / 피고: 당사",
				"rq_cn": "손해배상금 10억원",
				"cpct": "서울중앙지방법원",
				"ft_ctp": "적극 대응 예정",
				"lgd": "20220530",
				"cfd": "-"
			}
		]
	}`

	listRes := `{
		"status": "000", "message": "정상",
		"page_no": 1, "page_count": 100, "total_count": 3, "total_page": 1,
		"list": [
			{
				"rcept_no": "20220601000123",
				"corp_code": "00126380",
				"report_nm": "소송등의제기",
				"rcept_dt": "20220601"
			},
			{
				"rcept_no": "20220815000456",
				"corp_code": "00126380",
				"report_nm": "소송등의판결ㆍ결정",
				"rcept_dt": "20220815"
			},
			{
				"rcept_no": "20220901000789",
				"corp_code": "00126380",
				"report_nm": "주요사항보고서(유상증자결정)",
				"rcept_dt": "20220901"
			}
		]
	}`

	BeforeEach(func() {
		testhelpers.Activate()

		client = dart.New("test-dart-api-key")
		client.UseDefaultClient()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	It("unions both sources, keeping the dedicated row on receipt-no collision", func() {
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/lwstIs.json?corp_code=00126380&bgn_de=20220101&end_de=20221231").
			Reply(200).BodyString(lwstRes).
			Header("Content-Type", "application/json")
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/list.json?corp_code=00126380&bgn_de=20220101&end_de=20221231").
			Reply(200).BodyString(listRes).
			Header("Content-Type", "application/json")

		t, err := client.GetLawsuitsMerged(corpCode, "20220101", "20221231")
		Expect(err).NotTo(HaveOccurred())
		Expect(testhelpers.IsDone()).To(BeTrue())

		// the dedicated row, plus the one list.json row that is a lawsuit
		// and not already present
		Expect(t.Len()).To(Equal(2))

		first := t.Rows[0]
		Expect(first["접수번호"]).To(Equal("20220601000123"))
		Expect(first["사건명"]).To(Equal("손해배상 청구 소송"))
		Expect(first["관할법원"]).To(Equal("서울중앙지방법원"))
		Expect(first["제기일"]).To(Equal("2022-05-30"))

		second := t.Rows[1]
		Expect(second["접수번호"]).To(Equal("20220815000456"))
		Expect(second["사건명"]).To(Equal("소송등의판결ㆍ결정"))
		Expect(second["제기일"]).To(Equal("2022-08-15"))
		Expect(second["관할법원"]).To(BeNil())
		Expect(second["확정일"]).To(BeNil())
	})

	It("degrades to the dedicated endpoint when the disclosure list fails", func() {
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/lwstIs.json").
			Reply(200).BodyString(lwstRes).
			Header("Content-Type", "application/json")
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/list.json").
			Reply(200).BodyString(`{ "status": "020", "message": "사용한도 초과" }`).
			Header("Content-Type", "application/json")

		t, err := client.GetLawsuitsMerged(corpCode, "20220101", "20221231")
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Len()).To(Equal(1))
		Expect(t.Rows[0]["접수번호"]).To(Equal("20220601000123"))
	})

	It("recovers disclosure-list rows when the dedicated endpoint rejects the query", func() {
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/lwstIs.json").
			Reply(200).BodyString(`{ "status": "013", "message": "조회된 데이타가 없습니다." }`).
			Header("Content-Type", "application/json")
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/list.json").
			Reply(200).BodyString(listRes).
			Header("Content-Type", "application/json")

		t, err := client.GetLawsuitsMerged(corpCode, "20220101", "20221231")
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Len()).To(Equal(2))
		Expect(t.Rows[0]["접수번호"]).To(Equal("20220601000123"))
		Expect(t.Rows[0]["사건명"]).To(Equal("소송등의제기"))
		Expect(t.Rows[1]["접수번호"]).To(Equal("20220815000456"))
	})

	It("returns an empty table when both sources fail", func() {
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/lwstIs.json").
			Reply(200).BodyString(`{ "status": "020", "message": "사용한도 초과" }`).
			Header("Content-Type", "application/json")
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/list.json").
			Reply(200).BodyString(`{ "status": "020", "message": "사용한도 초과" }`).
			Header("Content-Type", "application/json")

		t, err := client.GetLawsuitsMerged(corpCode, "20220101", "20221231")
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Empty()).To(BeTrue())
	})

	It("refuses to call out with an empty key", func() {
		empty := dart.New("")
		empty.UseDefaultClient()

		_, err := empty.GetLawsuitsMerged(corpCode, "20220101", "20221231")
		Expect(err).To(MatchError(dart.ErrMissingAPIKey))
	})
})
