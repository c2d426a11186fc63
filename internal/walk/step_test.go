package walk_test

import (
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ringsim/internal/dynamo"
	"github.com/san-kum/ringsim/internal/rng"
	"github.com/san-kum/ringsim/internal/walk"
)

var _ = Describe("Step", func() {
	It("moves left, right or stays according to the draw", func() {
		positions := []int{1, 2, 3}
		src := &scripted{draws: []float64{0.1, 0.3, 0.9}}

		Expect(walk.Step(positions, 5, 0.25, src)).To(Succeed())
		Expect(positions).To(Equal([]int{0, 3, 3}))
	})

	It("wraps site 0 to N-1 when moving left", func() {
		positions := []int{0}
		Expect(walk.Step(positions, 5, 0.25, &scripted{draws: []float64{0.0}})).To(Succeed())
		Expect(positions).To(Equal([]int{4}))
	})

	It("wraps site N-1 to 0 when moving right", func() {
		positions := []int{4}
		Expect(walk.Step(positions, 5, 0.25, &scripted{draws: []float64{0.25}})).To(Succeed())
		Expect(positions).To(Equal([]int{0}))
	})

	It("never moves a walker when prob is zero", func() {
		positions := []int{0, 1, 2, 3}
		src := rng.New(4)
		for i := 0; i < 100; i++ {
			Expect(walk.Step(positions, 4, 0, src)).To(Succeed())
		}
		Expect(positions).To(Equal([]int{0, 1, 2, 3}))
	})

	It("always moves a walker when prob is one half", func() {
		positions := []int{2}
		src := rng.New(9)
		for i := 0; i < 50; i++ {
			before := positions[0]
			Expect(walk.Step(positions, 5, 0.5, src)).To(Succeed())
			Expect(positions[0]).NotTo(Equal(before))
		}
	})

	It("keeps every walker on the ring and the count fixed", func() {
		n := 7
		positions := make([]int, 500)
		for i := range positions {
			positions[i] = i % n
		}
		src := rng.New(4)
		for step := 0; step < 200; step++ {
			Expect(walk.Step(positions, n, 0.3, src)).To(Succeed())
			Expect(positions).To(HaveLen(500))
			for _, p := range positions {
				Expect(p).To(And(BeNumerically(">=", 0), BeNumerically("<", n)))
			}
		}
	})

	It("is deterministic for a fixed seed", func() {
		run := func() [][]int {
			positions := []int{5, 5, 5, 5, 5, 5}
			src := rng.New(4)
			var history [][]int
			for i := 0; i < 20; i++ {
				Expect(walk.Step(positions, 10, 0.4, src)).To(Succeed())
				history = append(history, append([]int(nil), positions...))
			}
			return history
		}
		Expect(run()).To(Equal(run()))
	})

	It("continues the stream across calls instead of repeating it", func() {
		src := rng.New(4)
		a := make([]int, 50)
		b := make([]int, 50)
		for i := range a {
			a[i], b[i] = 25, 25
		}
		Expect(walk.Step(a, 51, 0.4, src)).To(Succeed())
		Expect(walk.Step(b, 51, 0.4, src)).To(Succeed())
		Expect(a).NotTo(Equal(b))
	})

	DescribeTable("rejects malformed input",
		func(positions []int, n int, prob float64, want error) {
			before := slices.Clone(positions)
			err := walk.Step(positions, n, prob, rng.New(1))
			Expect(err).To(MatchError(want))
			Expect(positions).To(Equal(before))
		},
		Entry("ring of one site", []int{0}, 1, 0.25, dynamo.ErrRingTooSmall),
		Entry("ring of zero sites", []int{}, 0, 0.25, dynamo.ErrRingTooSmall),
		Entry("negative prob", []int{0}, 5, -0.1, dynamo.ErrParameterBounds),
		Entry("2*prob above one", []int{0}, 5, 0.6, dynamo.ErrParameterBounds),
		Entry("position at N", []int{0, 5}, 5, 0.25, dynamo.ErrInvalidState),
		Entry("negative position", []int{-1}, 5, 0.25, dynamo.ErrInvalidState),
	)
})

var _ = Describe("StepOccupancy", func() {
	It("redistributes from a snapshot of the old counts", func() {
		counts := []int{0, 2, 0}
		src := &scripted{draws: []float64{0.1, 0.3}}

		Expect(walk.StepOccupancy(counts, 0.25, src)).To(Succeed())
		Expect(counts).To(Equal([]int{1, 0, 1}))
	})

	It("wraps across both ends of the ring", func() {
		counts := []int{1, 0, 0, 1}
		src := &scripted{draws: []float64{0.1, 0.3}}

		Expect(walk.StepOccupancy(counts, 0.25, src)).To(Succeed())
		Expect(counts).To(Equal([]int{1, 0, 0, 1}))
	})

	It("conserves the total occupancy over many steps", func() {
		counts := []int{100, 0, 0, 40, 0, 0, 0, 7, 0, 3}
		src := rng.New(4)
		for step := 0; step < 500; step++ {
			Expect(walk.StepOccupancy(counts, 0.45, src)).To(Succeed())
			total := 0
			for _, c := range counts {
				Expect(c).To(BeNumerically(">=", 0))
				total += c
			}
			Expect(total).To(Equal(150))
		}
	})

	DescribeTable("rejects malformed input",
		func(counts []int, prob float64, want error) {
			Expect(walk.StepOccupancy(counts, prob, rng.New(1))).To(MatchError(want))
		},
		Entry("single site", []int{3}, 0.25, dynamo.ErrRingTooSmall),
		Entry("prob above one half", []int{1, 1}, 0.51, dynamo.ErrParameterBounds),
		Entry("negative count", []int{1, -1}, 0.25, dynamo.ErrInvalidState),
	)
})

var _ = Describe("Occupancy", func() {
	It("counts walkers per site", func() {
		counts, err := walk.Occupancy([]int{0, 0, 3, 4, 4, 4}, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(counts).To(Equal([]int{2, 0, 0, 1, 3}))
	})

	It("rejects positions off the ring", func() {
		_, err := walk.Occupancy([]int{5}, 5)
		Expect(err).To(MatchError(dynamo.ErrInvalidState))
	})
})
