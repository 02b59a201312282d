package scene_test

import (
	"github.com/rs/zerolog"
	"github.com/san-kum/gridsketch/internal/palette"
	"github.com/san-kum/gridsketch/internal/random"
	"github.com/san-kum/gridsketch/internal/scene"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Composer", func() {
	var composer *scene.Composer

	BeforeEach(func() {
		reg := palette.NewRegistry(palette.Builtin()...)
		composer = scene.NewComposer(scene.DefaultParams(), reg, zerolog.Nop())
	})

	DescribeTable("grid invariants across seeds",
		func(seed int64, canvas float64) {
			s := composer.Compose(canvas, random.New(seed))

			Expect(s.GridSize).To(BeNumerically(">=", 4))
			Expect(s.GridSize).To(BeNumerically("<=", 40))
			Expect(s.Cells).To(HaveLen(s.GridSize * s.GridSize))
			Expect(s.CellSize).To(BeNumerically("~", canvas/float64(s.GridSize), 1e-9))
			Expect(s.Background).To(Or(Equal(scene.Black), Equal(scene.White)))

			for _, c := range s.Cells {
				Expect(c.Color.A).To(Equal(uint8(180)))
				Expect(c.Size).To(BeNumerically(">=", s.CellSize*0.5))
				Expect(c.Size).To(BeNumerically("<=", s.CellSize*2))
				Expect(c.X).To(BeNumerically(">", 0))
				Expect(c.X).To(BeNumerically("<", canvas))
				Expect(c.Y).To(BeNumerically(">", 0))
				Expect(c.Y).To(BeNumerically("<", canvas))
			}
		},
		Entry("seed 1, 400px", int64(1), 400.0),
		Entry("seed 2, 720px", int64(2), 720.0),
		Entry("seed 3, 1080px", int64(3), 1080.0),
		Entry("seed 42, 99px", int64(42), 99.0),
		Entry("seed 1000, 2048px", int64(1000), 2048.0),
	)

	It("reproduces a scene from its seed", func() {
		a := composer.Compose(500, random.New(77))
		b := composer.Compose(500, random.New(77))
		Expect(a).To(Equal(b))
	})

	It("differs across seeds", func() {
		a := composer.Compose(500, random.New(1))
		b := composer.Compose(500, random.New(2))
		Expect(a).NotTo(Equal(b))
	})

	It("favors circles about four to one", func() {
		circles, total := 0, 0
		for seed := int64(0); seed < 200; seed++ {
			s := composer.Compose(400, random.New(seed))
			circles += s.Count(scene.Circle)
			total += len(s.Cells)
		}
		Expect(float64(circles) / float64(total)).To(BeNumerically("~", 0.8, 0.02))
	})

	It("picks black and white backgrounds evenly", func() {
		white := 0
		for seed := int64(0); seed < 1000; seed++ {
			if composer.Compose(100, random.New(seed)).Background == scene.White {
				white++
			}
		}
		Expect(white).To(BeNumerically("~", 500, 60))
	})

	It("honors configured aesthetics", func() {
		p := scene.DefaultParams()
		p.MinGrid, p.MaxGrid = 10, 10
		p.CircleProbability = 0
		p.Alpha = 255
		c := scene.NewComposer(p, nil, zerolog.Nop())

		s := c.Compose(100, random.New(9))
		Expect(s.GridSize).To(Equal(10))
		Expect(s.Count(scene.Square)).To(Equal(100))
		for _, cell := range s.Cells {
			Expect(cell.Color.A).To(Equal(uint8(255)))
		}
	})
})
