package dart_test

import (
	"archive/zip"
	"bytes"

	"dartview/internal/pkg/dart"
	"dartview/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetCompanies", func() {
	var client *dart.DartClient
	var apiKey = "test-dart-api-key"

	var companiesXML = `<?xml version="1.0" encoding="UTF-8"?>
<result>
    <list>
        <corp_code>00126380</corp_code>
        <corp_name>삼성전자</corp_name>
        <stock_code>005930</stock_code>
    </list>
    <list>
        <corp_code>00164779</corp_code>
        <corp_name>삼성전자서비스</corp_name>
        <stock_code> </stock_code>
    </list>
    <list>
        <corp_code>00434003</corp_code>
        <corp_name>다코</corp_name>
    </list>
</result>`

	BeforeEach(func() {
		testhelpers.Activate()

		client = dart.New(apiKey)
		client.UseDefaultClient()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	It("parses the embedded XML document", func() {
		zipDocument, err := testhelpers.CreateMockZipArchive("CORPCODE.xml", []byte(companiesXML))
		Expect(err).NotTo(HaveOccurred())

		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/corpCode.xml").Reply(200).
			Body(zipDocument).
			Header("Content-Type", "application/zip").
			Header("Content-Disposition", `attachment; filename="corpCode.zip"`)

		entries, err := client.GetCompanies()
		Expect(err).NotTo(HaveOccurred())
		Expect(testhelpers.IsDone()).To(BeTrue())

		Expect(entries).To(HaveLen(3))
		Expect(entries[0].CorpCode).To(Equal("00126380"))
		Expect(entries[0].CorpName).To(Equal("삼성전자"))
		Expect(entries[0].StockCode).To(Equal("005930"))

		// blank stock codes are trimmed down to empty
		Expect(entries[1].StockCode).To(Equal(""))

		// a record missing a field stays a record, not a parse failure
		Expect(entries[2].CorpName).To(Equal("다코"))
		Expect(entries[2].StockCode).To(Equal(""))
	})

	It("reads only the first archive entry", func() {
		buf := new(bytes.Buffer)
		zw := zip.NewWriter(buf)

		f, err := zw.Create("CORPCODE.xml")
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Write([]byte(companiesXML))
		Expect(err).NotTo(HaveOccurred())

		f, err = zw.Create("EXTRA.xml")
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Write([]byte(`<?xml version="1.0"?><result><list><corp_code>99999999</corp_code><corp_name>무시</corp_name></list></result>`))
		Expect(err).NotTo(HaveOccurred())

		Expect(zw.Close()).To(Succeed())

		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/corpCode.xml").Reply(200).
			Body(buf.Bytes()).
			Header("Content-Type", "application/zip")

		entries, err := client.GetCompanies()
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(3))
	})

	It("reports a corrupt archive", func() {
		testhelpers.New("https://opendart.fss.or.kr").
			Get("/api/corpCode.xml").Reply(200).
			BodyString("definitely not a zip")

		_, err := client.GetCompanies()
		Expect(err).To(MatchError(ContainSubstring("corrupt")))
	})
})
