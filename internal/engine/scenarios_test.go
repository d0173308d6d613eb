package engine_test

import (
	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rigidsim/internal/engine"
	"github.com/san-kum/rigidsim/internal/forces"
	"github.com/san-kum/rigidsim/internal/phys"
)

const dt = 1.0 / 60.0

var _ = Describe("drop onto a floor", func() {
	var (
		e      *engine.Engine
		sphere phys.ID
	)

	BeforeEach(func() {
		e = engine.New(forces.NewConstantGravity(mgl64.Vec3{0, -9.81, 0}), nil, nil)
		Expect(e.Initialize()).To(Succeed())

		_, err := e.AddStaticBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 1, 10})
		Expect(err).NotTo(HaveOccurred())

		sphere, err = e.AddDynamicSphere(mgl64.Vec3{0, 5, 0}, 0.5, 1)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(e.Shutdown()).To(Succeed())
	})

	It("settles on the floor surface", func() {
		for i := 0; i < 600; i++ {
			Expect(e.Update(dt)).To(Succeed())
		}

		p, err := e.GetPosition(sphere)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Y()).To(BeNumerically("~", 1.0, 0.05))

		v, err := e.GetVelocity(sphere)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Y()).To(BeNumerically("~", 0.0, 0.2))
	})

	It("never sinks below the surface", func() {
		for i := 0; i < 600; i++ {
			Expect(e.Update(dt)).To(Succeed())
			p, err := e.GetPosition(sphere)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Y()).To(BeNumerically(">=", 1.0-0.01))
		}
	})
})

var _ = Describe("billiards exchange", func() {
	It("transfers the full velocity in an equal-mass elastic hit", func() {
		e := engine.New(nil, nil, nil)
		Expect(e.Initialize()).To(Succeed())
		defer e.Shutdown()

		a, err := e.AddBody(phys.Config{
			Position:    mgl64.Vec3{-2, 0, 0},
			Velocity:    mgl64.Vec3{4, 0, 0},
			HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5},
			Mass:        1,
			Restitution: 1,
		})
		Expect(err).NotTo(HaveOccurred())

		b, err := e.AddBody(phys.Config{
			Position:    mgl64.Vec3{2, 0, 0},
			HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5},
			Mass:        1,
			Restitution: 1,
		})
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 120; i++ {
			Expect(e.Update(dt)).To(Succeed())
		}

		va, err := e.GetVelocity(a)
		Expect(err).NotTo(HaveOccurred())
		Expect(va.X()).To(BeNumerically("~", 0.0, 1e-9))

		vb, err := e.GetVelocity(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(vb.X()).To(BeNumerically("~", 4.0, 1e-9))
	})
})

var _ = Describe("raycast against a scene", func() {
	It("reports the nearest surface along the segment", func() {
		e := engine.New(nil, nil, nil)
		Expect(e.Initialize()).To(Succeed())
		defer e.Shutdown()

		near, err := e.AddStaticBox(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 1, 1})
		Expect(err).NotTo(HaveOccurred())
		_, err = e.AddStaticBox(mgl64.Vec3{8, 0, 0}, mgl64.Vec3{1, 1, 1})
		Expect(err).NotTo(HaveOccurred())

		hit, ok, err := e.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{20, 0, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(hit.ID).To(Equal(near))
		Expect(hit.Distance).To(BeNumerically("~", 2.5, 1e-12))
		Expect(hit.Normal).To(Equal(mgl64.Vec3{-1, 0, 0}))
	})

	It("misses when nothing lies on the segment", func() {
		e := engine.New(nil, nil, nil)
		Expect(e.Initialize()).To(Succeed())
		defer e.Shutdown()

		_, err := e.AddStaticBox(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 1, 1})
		Expect(err).NotTo(HaveOccurred())

		_, ok, err := e.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{20, 0, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})
})
