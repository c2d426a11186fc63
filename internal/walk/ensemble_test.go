package walk_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ringsim/internal/dynamo"
	"github.com/san-kum/ringsim/internal/rng"
	"github.com/san-kum/ringsim/internal/walk"
)

var _ = Describe("Ensemble", func() {
	It("conserves total density while advancing", func() {
		positions, err := walk.Place(1000, 20, dynamo.InitCenter, 0, rng.New(1))
		Expect(err).NotTo(HaveOccurred())

		e, err := walk.NewEnsemble(positions, 20, 0.25, rng.New(4))
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name()).To(Equal("walk"))
		Expect(e.Sites()).To(Equal(20))
		Expect(e.Walkers()).To(Equal(1000))

		for i := 0; i < 50; i++ {
			Expect(e.Advance()).To(Succeed())
			Expect(e.Density().Sum()).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("reports a fully concentrated ensemble as exactly one", func() {
		positions, err := walk.Place(1000, 20, dynamo.InitCenter, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		e, err := walk.NewEnsemble(positions, 20, 0.25, rng.New(4))
		Expect(err).NotTo(HaveOccurred())

		p := e.Density()
		Expect(p[10]).To(Equal(1.0))
		Expect(p.InUnitInterval()).To(BeTrue())
	})

	It("returns positions as a copy", func() {
		e, err := walk.NewEnsemble([]int{1, 2}, 4, 0.25, rng.New(4))
		Expect(err).NotTo(HaveOccurred())
		p := e.Positions()
		p[0] = 3
		Expect(e.Positions()[0]).To(Equal(1))
	})

	It("rejects a nil source", func() {
		_, err := walk.NewEnsemble([]int{0}, 4, 0.25, nil)
		Expect(err).To(MatchError(dynamo.ErrParameterBounds))
	})

	It("rejects walkers off the ring", func() {
		_, err := walk.NewEnsemble([]int{4}, 4, 0.25, rng.New(4))
		Expect(err).To(MatchError(dynamo.ErrInvalidState))
	})
})

var _ = Describe("Lattice", func() {
	It("keeps its total while advancing", func() {
		l, err := walk.NewLattice([]int{0, 0, 50, 0, 0}, 0.3, rng.New(4))
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 100; i++ {
			Expect(l.Advance()).To(Succeed())
			Expect(l.Total()).To(Equal(50))
			Expect(l.Density().Sum()).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("reports zero density for an empty lattice", func() {
		l, err := walk.NewLattice([]int{0, 0, 0}, 0.3, rng.New(4))
		Expect(err).NotTo(HaveOccurred())
		Expect(l.Advance()).To(Succeed())
		Expect(l.Density()).To(Equal(dynamo.State{0, 0, 0}))
	})

	It("matches the ensemble in distribution", func() {
		const n, z, steps = 31, 4000, 40
		positions, err := walk.Place(z, n, dynamo.InitCenter, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		counts, err := walk.Occupancy(positions, n)
		Expect(err).NotTo(HaveOccurred())

		e, err := walk.NewEnsemble(positions, n, 0.4, rng.New(1))
		Expect(err).NotTo(HaveOccurred())
		l, err := walk.NewLattice(counts, 0.4, rng.New(2))
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < steps; i++ {
			Expect(e.Advance()).To(Succeed())
			Expect(l.Advance()).To(Succeed())
		}

		pe, pl := e.Density(), l.Density()
		for i := range pe {
			Expect(pe[i]).To(BeNumerically("~", pl[i], 0.03))
		}
	})
})

var _ = Describe("Place", func() {
	It("puts every walker at the center", func() {
		positions, err := walk.Place(10, 9, dynamo.InitCenter, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(positions).To(HaveLen(10))
		for _, p := range positions {
			Expect(p).To(Equal(4))
		}
	})

	DescribeTable("keeps random placements on the ring",
		func(init dynamo.Init, width float64) {
			positions, err := walk.Place(2000, 13, init, width, rng.New(4))
			Expect(err).NotTo(HaveOccurred())
			for _, p := range positions {
				Expect(p).To(And(BeNumerically(">=", 0), BeNumerically("<", 13)))
			}
		},
		Entry("uniform", dynamo.InitUniform, 0.0),
		Entry("narrow gaussian", dynamo.InitGaussian, 1.0),
		Entry("wide gaussian", dynamo.InitGaussian, 50.0),
	)

	It("rejects a gaussian without width", func() {
		_, err := walk.Place(5, 10, dynamo.InitGaussian, 0, rng.New(4))
		Expect(err).To(MatchError(dynamo.ErrParameterBounds))
	})

	It("rejects unknown placements", func() {
		_, err := walk.Place(5, 10, dynamo.Init("spiral"), 0, rng.New(4))
		Expect(err).To(MatchError(dynamo.ErrParameterBounds))
	})
})
