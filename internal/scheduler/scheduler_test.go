package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type SchedulerTestSuite struct {
	suite.Suite
	logger *logrus.Logger
}

func (s *SchedulerTestSuite) SetupTest() {
	s.logger, _ = test.NewNullLogger()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) newScheduler(interval time.Duration) *Scheduler {
	sched, err := New(&Config{Interval: interval, Logger: s.logger})
	s.Require().NoError(err)
	s.T().Cleanup(sched.StopAll)
	return sched
}

func (s *SchedulerTestSuite) TestDefaultInterval() {
	sched, err := New(&Config{})
	s.Require().NoError(err)
	s.Equal(15*time.Second, sched.Interval())

	_, err = New(&Config{Interval: -time.Second})
	s.Error(err)
}

func (s *SchedulerTestSuite) TestFirstTickIsImmediate() {
	sched := s.newScheduler(time.Hour)

	var ticks atomic.Int32
	s.True(sched.Start("game-1", func(ctx context.Context) {
		ticks.Add(1)
	}))

	s.Eventually(func() bool { return ticks.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.True(sched.IsActive("game-1"))
}

func (s *SchedulerTestSuite) TestTicksRepeat() {
	sched := s.newScheduler(10 * time.Millisecond)

	var ticks atomic.Int32
	sched.Start("game-1", func(ctx context.Context) {
		ticks.Add(1)
	})

	s.Eventually(func() bool { return ticks.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func (s *SchedulerTestSuite) TestStartTwiceKeepsOneLoop() {
	sched := s.newScheduler(time.Hour)

	var first, second atomic.Int32
	s.True(sched.Start("game-1", func(ctx context.Context) { first.Add(1) }))
	s.False(sched.Start("game-1", func(ctx context.Context) { second.Add(1) }))

	s.Eventually(func() bool { return first.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Never(func() bool { return second.Load() > 0 || first.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	s.Len(sched.ActiveKeys(), 1)
}

func (s *SchedulerTestSuite) TestLoopsAreIndependentPerKey() {
	sched := s.newScheduler(time.Hour)

	var a, b atomic.Int32
	s.True(sched.Start("game-a", func(ctx context.Context) { a.Add(1) }))
	s.True(sched.Start("game-b", func(ctx context.Context) { b.Add(1) }))

	s.Eventually(func() bool { return a.Load() == 1 && b.Load() == 1 }, time.Second, 5*time.Millisecond)

	sched.Stop("game-a")
	s.False(sched.IsActive("game-a"))
	s.True(sched.IsActive("game-b"))
}

func (s *SchedulerTestSuite) TestStopTwiceAndNoTicksAfter() {
	sched := s.newScheduler(5 * time.Millisecond)

	var ticks atomic.Int32
	sched.Start("game-1", func(ctx context.Context) {
		if ctx.Err() == nil {
			ticks.Add(1)
		}
	})
	s.Eventually(func() bool { return ticks.Load() >= 2 }, time.Second, time.Millisecond)

	s.True(sched.Stop("game-1"))
	s.False(sched.Stop("game-1"))

	// Let a tick that passed its check before the stop finish counting
	time.Sleep(10 * time.Millisecond)
	after := ticks.Load()
	s.Never(func() bool { return ticks.Load() != after }, 50*time.Millisecond, 5*time.Millisecond)
	s.False(sched.IsActive("game-1"))
}

func (s *SchedulerTestSuite) TestStopFromInsideTick() {
	sched := s.newScheduler(5 * time.Millisecond)

	var ticks atomic.Int32
	sched.Start("game-1", func(ctx context.Context) {
		ticks.Add(1)
		sched.Stop("game-1")
		// The tick's own context reflects the stop immediately
		if ctx.Err() == nil {
			ticks.Add(100)
		}
	})

	s.Eventually(func() bool { return !sched.IsActive("game-1") }, time.Second, time.Millisecond)
	s.Never(func() bool { return ticks.Load() != 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func (s *SchedulerTestSuite) TestInFlightTickSeesCancellation() {
	sched := s.newScheduler(time.Hour)

	entered := make(chan struct{})
	release := make(chan struct{})
	var cancelled atomic.Bool

	sched.Start("game-1", func(ctx context.Context) {
		close(entered)
		<-release
		cancelled.Store(ctx.Err() != nil)
	})

	<-entered
	s.True(sched.Stop("game-1"))
	close(release)

	s.Eventually(cancelled.Load, time.Second, time.Millisecond)
}

func (s *SchedulerTestSuite) TestTickSkippedWhenStoppedAfterGate() {
	sched := s.newScheduler(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	t := &task{key: "game-1", ctx: ctx, cancel: cancel}
	s.True(t.beginTick())
	s.True(t.stop())

	called := false
	sched.tick(t, func(ctx context.Context) {
		called = true
	})
	s.False(called)
}

func (s *SchedulerTestSuite) TestRestartAfterStop() {
	sched := s.newScheduler(time.Hour)

	var ticks atomic.Int32
	fn := func(ctx context.Context) { ticks.Add(1) }

	s.True(sched.Start("game-1", fn))
	s.Eventually(func() bool { return ticks.Load() == 1 }, time.Second, time.Millisecond)
	sched.Stop("game-1")

	s.True(sched.Start("game-1", fn))
	s.Eventually(func() bool { return ticks.Load() == 2 }, time.Second, time.Millisecond)
}

func (s *SchedulerTestSuite) TestPanickingTickKeepsPolling() {
	sched := s.newScheduler(5 * time.Millisecond)

	var ticks atomic.Int32
	sched.Start("game-1", func(ctx context.Context) {
		if ticks.Add(1) == 1 {
			panic("boom")
		}
	})

	s.Eventually(func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	s.True(sched.IsActive("game-1"))
}

func (s *SchedulerTestSuite) TestStopAllWaitsForTicks() {
	sched := s.newScheduler(time.Hour)

	entered := make(chan struct{})
	var finished atomic.Bool
	sched.Start("game-1", func(ctx context.Context) {
		close(entered)
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		finished.Store(true)
	})

	<-entered
	sched.StopAll()
	s.True(finished.Load())
	s.Empty(sched.ActiveKeys())
}
