package playback_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hanoi/internal/anim"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/playback"
)

// frame is one 60 fps tick in milliseconds.
const frame = 1000.0 / 60

var _ = Describe("Scheduler", func() {
	var (
		s       *playback.Scheduler
		changes []playback.Change
	)

	BeforeEach(func() {
		s = playback.New(playback.WithStrict(true))
		changes = nil
		s.Subscribe(func(c playback.Change) { changes = append(changes, c) })
	})

	Describe("Load", func() {
		It("stacks every disk on the home rod and stays idle", func() {
			Expect(s.Load(3)).To(Succeed())

			Expect(s.State()).To(Equal(playback.Idle))
			Expect(s.Total()).To(Equal(7))
			Expect(s.Step()).To(Equal(0))
			Expect(s.Tower().Disks(hanoi.A)).To(Equal([]hanoi.Disk{2, 1, 0}))
			Expect(s.Tower().Valid()).To(BeTrue())

			layout := anim.NewLayout(3)
			disks := s.Disks()
			Expect(disks).To(HaveLen(3))
			Expect(disks[2].Position).To(Equal(layout.SlotPosition(0, 0)))
			Expect(disks[0].Position).To(Equal(layout.SlotPosition(2, 0)))
			Expect(disks[0].Radius).To(BeNumerically("<", disks[2].Radius))
		})

		It("rejects counts outside the supported range without touching state", func() {
			Expect(s.Load(5)).To(Succeed())
			before := s.Tower()

			err := s.Load(config.MaxDisks + 1)
			Expect(errors.Is(err, hanoi.ErrInvalidDiskCount)).To(BeTrue())
			Expect(errors.Is(s.Load(config.MinDisks-1), config.ErrInvalidDiskCount)).To(BeTrue())

			Expect(s.DiskCount()).To(Equal(5))
			Expect(s.Tower()).To(Equal(before))
		})

		It("resets identically when loaded twice", func() {
			Expect(s.Load(4)).To(Succeed())
			first := s.Tower()
			firstDisks := s.Disks()

			s.Start()
			for now := 0.0; now < 5000; now += frame {
				Expect(s.Tick(now)).To(Succeed())
			}
			Expect(s.Step()).To(BeNumerically(">", 0))

			Expect(s.Load(4)).To(Succeed())
			Expect(s.Tower()).To(Equal(first))
			Expect(s.Disks()).To(Equal(firstDisks))
			Expect(s.Step()).To(Equal(0))
			Expect(s.State()).To(Equal(playback.Idle))
			_, _, ok := s.LastMove()
			Expect(ok).To(BeFalse())
		})

		It("reloads the current disk count", func() {
			Expect(s.Load(6)).To(Succeed())
			s.Start()
			Expect(s.Tick(0)).To(Succeed())
			Expect(s.Reload()).To(Succeed())
			Expect(s.DiskCount()).To(Equal(6))
			Expect(s.Step()).To(Equal(0))
		})
	})

	Describe("Start and Stop", func() {
		BeforeEach(func() {
			Expect(s.Load(3)).To(Succeed())
			changes = nil
		})

		It("follows idle → running → paused → running", func() {
			s.Start()
			Expect(s.State()).To(Equal(playback.Running))
			s.Start()
			Expect(s.State()).To(Equal(playback.Running))
			s.Stop()
			Expect(s.State()).To(Equal(playback.Paused))
			s.Stop()
			Expect(s.State()).To(Equal(playback.Paused))
			s.Toggle()
			Expect(s.State()).To(Equal(playback.Running))

			Expect(changes).To(HaveLen(5))
			Expect(changes[0].From).To(Equal(playback.Idle))
			Expect(changes[0].To).To(Equal(playback.Running))
			Expect(changes[2].Event).To(Equal(playback.EventStop))
		})

		It("ignores stop while idle", func() {
			s.Stop()
			Expect(s.State()).To(Equal(playback.Idle))
		})
	})

	Describe("Tick", func() {
		BeforeEach(func() {
			Expect(s.Load(3)).To(Succeed())
		})

		It("does nothing while idle", func() {
			Expect(s.Tick(0)).To(Succeed())
			Expect(s.Step()).To(Equal(0))
		})

		It("dispatches the first move immediately and then every step duration", func() {
			s.Start()
			Expect(s.Tick(100)).To(Succeed())
			Expect(s.Step()).To(Equal(1))
			m, disk, ok := s.LastMove()
			Expect(ok).To(BeTrue())
			Expect(m).To(Equal(hanoi.Move{Source: hanoi.A, Target: hanoi.C}))
			Expect(disk).To(Equal(0))

			Expect(s.Tick(100 + anim.StepDuration - 1)).To(Succeed())
			Expect(s.Step()).To(Equal(1))

			Expect(s.Tick(100 + anim.StepDuration)).To(Succeed())
			Expect(s.Step()).To(Equal(2))
		})

		It("measures the next threshold from the dispatching tick", func() {
			s.Start()
			Expect(s.Tick(0)).To(Succeed())
			// late tick: the next threshold is 1300+1250, not 2500
			Expect(s.Tick(1300)).To(Succeed())
			Expect(s.Step()).To(Equal(2))
			Expect(s.Tick(2500)).To(Succeed())
			Expect(s.Step()).To(Equal(2))
			Expect(s.Tick(2550)).To(Succeed())
			Expect(s.Step()).To(Equal(3))
		})

		It("sends the moved disk along a lift, translate, lower arc", func() {
			s.Start()
			Expect(s.Tick(0)).To(Succeed())

			layout := s.Layout()
			small := s.Disks()[0]
			Expect(small.Animating).To(BeTrue())
			Expect(small.Keyframe).To(Equal(0))
			Expect(small.Position.Y).To(BeNumerically(">", layout.SlotPosition(2, 0).Y))

			for now := frame; now < anim.StepDuration; now += frame {
				Expect(s.Tick(now)).To(Succeed())
			}
			Expect(s.Step()).To(Equal(1))
			Expect(s.Tick(anim.StepDuration + frame)).To(Succeed())
			Expect(s.Step()).To(Equal(2))

			dest := layout.SlotPosition(0, hanoi.C.Index())
			pos := s.Disks()[0].Position
			Expect(pos.X).To(BeNumerically("~", dest.X, 0.05))
			Expect(pos.Y).To(BeNumerically("~", dest.Y, 0.05))
		})

		It("plays the whole plan and ends with every disk on the goal rod", func() {
			s.Start()
			now := 0.0
			for !s.Drained() {
				Expect(s.Tick(now)).To(Succeed())
				Expect(s.Tower().Valid()).To(BeTrue())
				now += frame
			}
			Expect(s.Step()).To(Equal(7))
			Expect(s.Tower().Disks(hanoi.C)).To(Equal([]hanoi.Disk{2, 1, 0}))
			Expect(s.Progress()).To(Equal(1.0))

			Expect(changes[len(changes)-1].Event).To(Equal(playback.EventDrained))
			Expect(s.State()).To(Equal(playback.Running))

			// start on a drained plan is a no-op
			s.Stop()
			s.Start()
			Expect(s.State()).To(Equal(playback.Paused))
		})
	})

	Describe("pause gating", func() {
		BeforeEach(func() {
			Expect(s.Load(3)).To(Succeed())
			s.Start()
			Expect(s.Tick(0)).To(Succeed())
			s.Stop()
		})

		It("never pops a move while paused", func() {
			before := s.Tower()
			for now := 0.0; now < 10*anim.StepDuration; now += frame {
				Expect(s.Tick(now)).To(Succeed())
			}
			Expect(s.Step()).To(Equal(1))
			Expect(s.Tower()).To(Equal(before))
		})

		It("keeps the in-flight disk animating while paused", func() {
			start := s.Disks()[0]
			Expect(start.Animating).To(BeTrue())

			Expect(s.Tick(frame)).To(Succeed())
			Expect(s.Disks()[0].Position).NotTo(Equal(start.Position))

			for now := 2 * frame; now < 2*anim.StepDuration; now += frame {
				Expect(s.Tick(now)).To(Succeed())
			}
			Expect(s.Disks()[0].Animating).To(BeFalse())
			Expect(s.Step()).To(Equal(1))
		})

		It("resumes dispatching once started again", func() {
			s.Start()
			Expect(s.Tick(anim.StepDuration)).To(Succeed())
			Expect(s.Step()).To(Equal(2))
		})
	})

	Describe("invariant violations", func() {
		It("aborts the cycle on a pop from an empty rod", func() {
			bad := hanoi.Plan{{Source: hanoi.A, Target: hanoi.C}, {Source: hanoi.B, Target: hanoi.C}}
			Expect(s.LoadPlan(3, bad)).To(Succeed())
			s.Start()
			Expect(s.Tick(0)).To(Succeed())

			err := s.Tick(anim.StepDuration)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, hanoi.ErrEmptyRod)).To(BeTrue())

			var re *hanoi.RodError
			Expect(errors.As(err, &re)).To(BeTrue())
			Expect(re.Step).To(Equal(1))
			Expect(re.Rod).To(Equal(hanoi.B))

			Expect(s.State()).To(Equal(playback.Idle))
			Expect(s.Total()).To(Equal(0))
			Expect(changes[len(changes)-1].Event).To(Equal(playback.EventAbort))
			Expect(changes[len(changes)-1].Err).To(MatchError(err))

			// tower untouched by the failed move
			Expect(s.Tower().Disks(hanoi.C)).To(Equal([]hanoi.Disk{0}))
		})

		It("aborts instead of panicking when strict mode catches an illegal stack", func() {
			bad := hanoi.Plan{{Source: hanoi.A, Target: hanoi.B}, {Source: hanoi.A, Target: hanoi.B}}
			Expect(s.LoadPlan(3, bad)).To(Succeed())
			s.Start()
			Expect(s.Tick(0)).To(Succeed())

			var err error
			Expect(func() { err = s.Tick(2000) }).NotTo(Panic())
			Expect(errors.Is(err, hanoi.ErrIllegalMove)).To(BeTrue())

			var re *hanoi.RodError
			Expect(errors.As(err, &re)).To(BeTrue())
			Expect(re.Step).To(Equal(1))
			Expect(re.Rod).To(Equal(hanoi.B))

			Expect(s.State()).To(Equal(playback.Idle))
			Expect(s.Total()).To(Equal(0))
			Expect(changes[len(changes)-1].Event).To(Equal(playback.EventAbort))

			// no disk lost: the rejected move left every rod as it was
			snap := s.Tower()
			Expect(snap.Valid()).To(BeTrue())
			Expect(snap.Disks(hanoi.A)).To(Equal([]hanoi.Disk{2, 1}))
			Expect(snap.Disks(hanoi.B)).To(Equal([]hanoi.Disk{0}))
		})
	})

	Describe("step duration", func() {
		It("scales dispatch spacing and keyframes", func() {
			fast := playback.New(playback.WithStepDuration(500))
			Expect(fast.Load(3)).To(Succeed())
			fast.Start()
			Expect(fast.Tick(0)).To(Succeed())
			Expect(fast.Tick(500)).To(Succeed())
			Expect(fast.Step()).To(Equal(2))
			Expect(fast.StepDuration()).To(Equal(500.0))
		})

		It("ignores non-positive durations", func() {
			Expect(playback.New(playback.WithStepDuration(0)).StepDuration()).To(Equal(anim.StepDuration))
		})
	})
})
