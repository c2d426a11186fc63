package diffusion_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/ringsim/internal/diffusion"
	"github.com/san-kum/ringsim/internal/dynamo"
	"github.com/san-kum/ringsim/internal/rng"
)

var _ = Describe("Step", func() {
	var f *mat.Dense

	BeforeEach(func() {
		var err error
		f, err = diffusion.NewMatrix(5, 1, 0.1, 1)
		Expect(err).NotTo(HaveOccurred())
	})

	It("applies one step to a delta", func() {
		p := []float64{1, 0, 0, 0, 0}
		Expect(diffusion.Step(f, p)).To(Succeed())

		want := []float64{0.8, 0.1, 0, 0, 0.1}
		for i := range want {
			Expect(p[i]).To(BeNumerically("~", want[i], 1e-12))
		}
	})

	It("uses the pre-step vector for every element", func() {
		p := []float64{0.1, 0.2, 0.3, 0.4, 0.0}
		old := append([]float64(nil), p...)
		Expect(diffusion.Step(f, p)).To(Succeed())

		for i := range p {
			want := 0.0
			for j := range old {
				want += f.At(i, j) * old[j]
			}
			Expect(p[i]).To(BeNumerically("~", want, 1e-14))
		}
	})

	It("conserves mass over many steps", func() {
		f, err := diffusion.NewMatrix(50, 1, 0.002, 0.1)
		Expect(err).NotTo(HaveOccurred())
		p, err := diffusion.Profile(50, dynamo.InitGaussian, 3)
		Expect(err).NotTo(HaveOccurred())
		mass := p.Sum()

		for i := 0; i < 1000; i++ {
			Expect(diffusion.Step(f, p)).To(Succeed())
		}
		Expect(p.Sum()).To(BeNumerically("~", mass, 1e-9*mass))
	})

	It("stays inside [0, 1] when alpha <= 0.5", func() {
		for _, alpha := range []float64{0.1, 0.25, 0.5} {
			f, err := diffusion.NewMatrix(21, alpha, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			p, err := diffusion.Profile(21, dynamo.InitCenter, 0)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 500; i++ {
				Expect(diffusion.Step(f, p)).To(Succeed())
				Expect(p.InUnitInterval()).To(BeTrue(), "alpha %v step %d: %v", alpha, i, p)
			}
		}
	})

	DescribeTable("stays inside [0, 1] from a random unit-mass start",
		func(seed int64, n int, alpha float64) {
			src := rng.New(seed)
			p := make(dynamo.State, n)
			for i := range p {
				p[i] = src.Float64()
			}
			mass := p.Sum()
			for i := range p {
				p[i] /= mass
			}

			f, err := diffusion.NewMatrix(n, alpha, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 200; i++ {
				Expect(diffusion.Step(f, p)).To(Succeed())
				Expect(p.InUnitInterval()).To(BeTrue(), "step %d: %v", i, p)
			}
			Expect(p.Sum()).To(BeNumerically("~", 1.0, 1e-9))
		},
		Entry("small ring, mild alpha", int64(1), 5, 0.1),
		Entry("medium ring, quarter alpha", int64(2), 17, 0.25),
		Entry("large ring, stability edge", int64(3), 64, 0.5),
		Entry("odd ring, stability edge", int64(4), 9, 0.5),
	)

	It("leaves [0, 1] when alpha > 0.5 even though mass is conserved", func() {
		f, err := diffusion.NewMatrix(21, 0.75, 1, 1)
		Expect(err).NotTo(HaveOccurred())
		p, err := diffusion.Profile(21, dynamo.InitCenter, 0)
		Expect(err).NotTo(HaveOccurred())

		left := false
		for i := 0; i < 50 && !left; i++ {
			Expect(diffusion.Step(f, p)).To(Succeed())
			Expect(p.Sum()).To(BeNumerically("~", 1.0, 1e-9))
			left = !p.InUnitInterval()
		}
		Expect(left).To(BeTrue())
	})

	It("reaches the uniform state", func() {
		f, err := diffusion.NewMatrix(11, 0.4, 1, 1)
		Expect(err).NotTo(HaveOccurred())
		p, err := diffusion.Profile(11, dynamo.InitCenter, 0)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 2000; i++ {
			Expect(diffusion.Step(f, p)).To(Succeed())
		}
		for _, v := range p {
			Expect(v).To(BeNumerically("~", 1.0/11.0, 1e-9))
		}
	})

	DescribeTable("fails loudly on shape mismatch",
		func(m mat.Matrix, p []float64) {
			before := append([]float64(nil), p...)
			Expect(diffusion.Step(m, p)).To(MatchError(dynamo.ErrDimensionMismatch))
			Expect(p).To(Equal(before))
		},
		Entry("short vector", mat.NewDense(5, 5, nil), []float64{1, 0, 0, 0}),
		Entry("long vector", mat.NewDense(3, 3, nil), []float64{1, 0, 0, 0}),
		Entry("non-square matrix", mat.NewDense(4, 3, nil), []float64{1, 0, 0, 0}),
	)

	It("rejects a nil matrix", func() {
		Expect(diffusion.Step(nil, []float64{1, 0, 0})).To(MatchError(dynamo.ErrDimensionMismatch))
	})
})

var _ = Describe("Field", func() {
	It("advances and reports normalized density", func() {
		f, err := diffusion.NewMatrix(5, 1, 0.1, 1)
		Expect(err).NotTo(HaveOccurred())
		field, err := diffusion.NewField(f, []float64{2, 0, 0, 0, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(field.Name()).To(Equal("diffusion"))
		Expect(field.Sites()).To(Equal(5))

		Expect(field.Advance()).To(Succeed())
		Expect(field.Values()[0]).To(BeNumerically("~", 1.6, 1e-12))
		d := field.Density()
		Expect(d[0]).To(BeNumerically("~", 0.8, 1e-12))
		Expect(d.Sum()).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("rejects mismatched shapes", func() {
		f, err := diffusion.NewMatrix(5, 1, 0.1, 1)
		Expect(err).NotTo(HaveOccurred())
		_, err = diffusion.NewField(f, []float64{1, 0})
		Expect(err).To(MatchError(dynamo.ErrDimensionMismatch))
	})
})

var _ = Describe("Profile", func() {
	DescribeTable("sums to one",
		func(n int, init dynamo.Init, width float64) {
			p, err := diffusion.Profile(n, init, width)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(HaveLen(n))
			Expect(p.Sum()).To(BeNumerically("~", 1.0, 1e-12))
			Expect(p.InUnitInterval()).To(BeTrue())
		},
		Entry("center", 10, dynamo.InitCenter, 0.0),
		Entry("uniform", 7, dynamo.InitUniform, 0.0),
		Entry("gaussian", 40, dynamo.InitGaussian, 4.0),
	)

	It("is symmetric about the center for a gaussian", func() {
		p, err := diffusion.Profile(21, dynamo.InitGaussian, 2)
		Expect(err).NotTo(HaveOccurred())
		for k := 1; k <= 10; k++ {
			Expect(p[10-k]).To(BeNumerically("~", p[10+k], 1e-15))
		}
	})

	It("rejects bad arguments", func() {
		_, err := diffusion.Profile(2, dynamo.InitCenter, 0)
		Expect(err).To(MatchError(dynamo.ErrRingTooSmall))
		_, err = diffusion.Profile(10, dynamo.InitGaussian, -1)
		Expect(err).To(MatchError(dynamo.ErrParameterBounds))
		_, err = diffusion.Profile(10, dynamo.Init("ramp"), 0)
		Expect(err).To(MatchError(dynamo.ErrParameterBounds))
	})
})
