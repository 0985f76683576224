package control

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"MenubarCountdown/timer"
)

// ErrClosed is returned for commands sent after Close.
var ErrClosed = errors.New("controller closed")

// Observer receives countdown updates. Methods are called on the controller's
// event loop goroutine and must not block on the controller.
type Observer interface {
	// CountdownChanged is called after every transition and tick.
	CountdownChanged(s timer.Snapshot)
	// CountdownExpired is called once when remaining time reaches zero.
	CountdownExpired(s timer.Snapshot)
}

// Controller owns the countdown state machine.
//
// Concurrency model: a single goroutine (see loop) applies every command and
// tick, so the Countdown itself needs no locking. Ticks are one-shot callbacks
// scheduled on the clock; each one re-posts itself as a command for the next
// whole second, tagged with a generation so that ticks belonging to an older
// run (before a pause, stop or restart) are dropped.
type Controller struct {
	clock     timer.Clock
	countdown *timer.Countdown

	cmdCh  chan Command
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.RWMutex
	snapshot  timer.Snapshot
	observers []Observer

	// owned by the loop goroutine
	generation  uint64
	pendingTick timer.Stopper
}

// New creates a controller and starts its event loop.
func New(clock timer.Clock) *Controller {
	if clock == nil {
		clock = timer.SystemClock
	}
	c := &Controller{
		clock:     clock,
		countdown: timer.NewCountdown(clock),
		cmdCh:     make(chan Command, 64),
		done:      make(chan struct{}),
	}
	c.snapshot = c.countdown.Snapshot()
	c.ctx, c.cancel = context.WithCancel(context.Background())
	go c.loop()
	return c
}

// Subscribe registers an observer for countdown updates.
func (c *Controller) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// Start begins a countdown of the given number of seconds.
func (c *Controller) Start(seconds int) error {
	return c.do(Command{Type: CmdStart, Seconds: seconds})
}

// Pause pauses a running countdown.
func (c *Controller) Pause() error {
	return c.do(Command{Type: CmdPause})
}

// Resume resumes a paused countdown.
func (c *Controller) Resume() error {
	return c.do(Command{Type: CmdResume})
}

// Stop stops the countdown from any state.
func (c *Controller) Stop() error {
	return c.do(Command{Type: CmdStop})
}

// Snapshot returns the most recently published countdown state.
func (c *Controller) Snapshot() timer.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// DisplayString returns the status title for the current remaining time.
func (c *Controller) DisplayString(showSeconds bool) string {
	return timer.FormatRemaining(c.Snapshot().RemainingSeconds, showSeconds)
}

// EnqueueCommand posts a command without waiting for it to be applied.
func (c *Controller) EnqueueCommand(cmd Command) error {
	if c.ctx.Err() != nil {
		return ErrClosed
	}
	select {
	case c.cmdCh <- cmd:
		return nil
	case <-c.ctx.Done():
		return ErrClosed
	}
}

// Close stops the event loop and any pending tick.
func (c *Controller) Close() {
	c.cancel()
	<-c.done
}

// flush waits until every command queued before it has been applied.
func (c *Controller) flush() error {
	return c.do(Command{Type: cmdFlush})
}

func (c *Controller) do(cmd Command) error {
	cmd.Reply = make(chan error, 1)
	if err := c.EnqueueCommand(cmd); err != nil {
		return err
	}
	select {
	case err := <-cmd.Reply:
		return err
	case <-c.ctx.Done():
		return ErrClosed
	}
}

func (c *Controller) loop() {
	defer close(c.done)
	for {
		select {
		case <-c.ctx.Done():
			c.cancelTick()
			return
		case cmd := <-c.cmdCh:
			err := c.apply(cmd)
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- err:
				default:
				}
			}
		}
	}
}

func (c *Controller) apply(cmd Command) error {
	switch cmd.Type {
	case CmdStart:
		log.Printf("start timer %ds", cmd.Seconds)
		if err := c.countdown.Start(cmd.Seconds); err != nil {
			return err
		}
		c.scheduleTick()
	case CmdPause:
		log.Printf("pause timer at %ds", c.countdown.RemainingSeconds())
		if err := c.countdown.Pause(); err != nil {
			return err
		}
		c.cancelTick()
	case CmdResume:
		log.Printf("resume timer at %ds", c.countdown.RemainingSeconds())
		if err := c.countdown.Resume(); err != nil {
			return err
		}
		c.scheduleTick()
	case CmdStop:
		log.Printf("stop timer")
		c.countdown.Stop()
		c.cancelTick()
	case cmdTick:
		return c.tick(cmd.generation)
	case cmdFlush:
		return nil
	default:
		return fmt.Errorf("unknown command %d", cmd.Type)
	}
	c.publish(false)
	return nil
}

func (c *Controller) tick(generation uint64) error {
	if generation != c.generation {
		return nil
	}
	c.pendingTick = nil

	result, next := c.countdown.Tick()
	switch result {
	case timer.TickIgnored:
		log.Printf("ignoring tick because timer is not running")
		return nil
	case timer.TickExpired:
		log.Printf("timer expired")
		c.publish(true)
	case timer.TickContinue:
		c.publish(false)
		c.post(next)
	}
	return nil
}

// scheduleTick starts a new tick chain aimed at the next whole second of the
// freshly reset stopwatch.
func (c *Controller) scheduleTick() {
	c.cancelTick()
	c.post(c.countdown.NextTickDelay())
}

func (c *Controller) cancelTick() {
	c.generation++
	if c.pendingTick != nil {
		c.pendingTick.Stop()
		c.pendingTick = nil
	}
}

func (c *Controller) post(delay time.Duration) {
	gen := c.generation
	c.pendingTick = c.clock.AfterFunc(delay, func() {
		_ = c.EnqueueCommand(Command{Type: cmdTick, generation: gen})
	})
}

func (c *Controller) publish(expired bool) {
	s := c.countdown.Snapshot()

	c.mu.Lock()
	c.snapshot = s
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o.CountdownChanged(s)
	}
	if expired {
		for _, o := range observers {
			o.CountdownExpired(s)
		}
	}
}
