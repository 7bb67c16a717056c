package nskv_test

import (
	"os"

	"github.com/google/uuid"
	"github.com/mplewis/nskv"
	"github.com/mplewis/nskv/backing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const bucket = "mplewis-nskv-test"

var _ = Describe("integration test", func() {
	Context("with an S3 backing", func() {
		var s *nskv.Store[string]

		BeforeEach(func() {
			if os.Getenv("TEST_WITH_LIVE_S3") == "" {
				Skip("set TEST_WITH_LIVE_S3 to run against a live bucket")
			}

			b, err := backing.NewS3(backing.S3Args{Bucket: bucket})
			Expect(err).NotTo(HaveOccurred())

			serialize, unserialize := nskv.StringCodec()
			s, err = nskv.New(nskv.Args[string]{
				Backing:     b,
				Namespace:   "it-" + uuid.New().String(), // fresh namespace per run
				Serialize:   serialize,
				Unserialize: unserialize,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("stores, finds, and clears namespaced values", func() {
			Expect(s.Set("cars.bmw.large", "sedan")).To(Succeed())
			Expect(s.Set("cars.opel.medium", "hatch")).To(Succeed())

			v, err := s.Get("cars.bmw.large")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("sedan"))

			keys, err := s.FindKeys("cars.*.large")
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(Equal([]nskv.Key{"cars.bmw.large"}))

			Expect(s.Clear()).To(Succeed())

			all, err := s.Keys()
			Expect(err).NotTo(HaveOccurred())
			for _, k := range all {
				Expect(k).To(BeNil())
			}
		})
	})
})
