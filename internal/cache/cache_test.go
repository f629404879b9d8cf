package cache_test

import (
	"errors"
	"time"

	"dartview/internal/cache"
	"dartview/internal/pkg/table"
	"dartview/internal/report"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	query := func(credential string) report.Query {
		return report.Query{
			Kind:       report.KindFinancialIndicators,
			CorpCode:   "00126380",
			Credential: credential,
			YearFrom:   2020,
			YearTo:     2023,
		}
	}

	It("produces once per key within the window", func() {
		store := cache.New(cache.DefaultTTL)
		calls := 0
		produce := func() (*table.Table, error) {
			calls++
			return table.New("지표명"), nil
		}

		first, err := store.Do(query("key-a"), produce)
		Expect(err).NotTo(HaveOccurred())
		second, err := store.Do(query("key-a"), produce)
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(BeIdenticalTo(first))
		Expect(calls).To(Equal(1))
	})

	It("keeps credentials on separate keys", func() {
		store := cache.New(cache.DefaultTTL)
		calls := 0
		produce := func() (*table.Table, error) {
			calls++
			return table.New("지표명"), nil
		}

		_, err := store.Do(query("key-a"), produce)
		Expect(err).NotTo(HaveOccurred())
		_, err = store.Do(query("key-b"), produce)
		Expect(err).NotTo(HaveOccurred())

		Expect(calls).To(Equal(2))
	})

	It("re-produces after the window has passed", func() {
		store := cache.New(10 * time.Millisecond)
		calls := 0
		produce := func() (*table.Table, error) {
			calls++
			return table.New("지표명"), nil
		}

		_, err := store.Do(query("key-a"), produce)
		Expect(err).NotTo(HaveOccurred())

		time.Sleep(20 * time.Millisecond)

		_, err = store.Do(query("key-a"), produce)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(2))
	})

	It("never caches a failure", func() {
		store := cache.New(cache.DefaultTTL)
		calls := 0
		boom := errors.New("DART error 500")
		produce := func() (*table.Table, error) {
			calls++
			return nil, boom
		}

		_, err := store.Do(query("key-a"), produce)
		Expect(err).To(MatchError(boom))
		_, err = store.Do(query("key-a"), produce)
		Expect(err).To(MatchError(boom))

		Expect(calls).To(Equal(2))
	})
})
