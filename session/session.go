package session

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/player/ability"
	"github.com/oomph-ac/strafe/player/event"
	"github.com/oomph-ac/strafe/world"
	"github.com/sirupsen/logrus"
)

// Session drives a player at a fixed tick rate from a stream of input frames, optionally recording
// every tick.
type Session struct {
	Player *player.Player

	log       *logrus.Logger
	in        *input.State
	q         world.Query
	dt        float32
	abilities ability.Opts

	rec *Recorder
}

// Start is where and how a session's player spawns.
type Start struct {
	Pos        mgl32.Vec3
	Yaw, Pitch float32
}

// New creates a player at the start position with every enabled ability registered.
func New(log *logrus.Logger, opts player.Opts, abilities ability.Opts, start Start, q world.Query, dt float32) (*Session, error) {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if dt <= 0 {
		return nil, oerror.Newk(oerror.KindConfig, "session tick duration must be positive (got %v)", dt)
	}

	in := input.NewState()
	p, err := player.New(log, opts, in, start.Pos)
	if err != nil {
		return nil, err
	}
	p.SetRotation(start.Yaw, start.Pitch)
	if err := ability.Register(p, abilities); err != nil {
		return nil, err
	}
	return &Session{Player: p, log: log, in: in, q: q, dt: dt, abilities: abilities}, nil
}

// Recording returns true if the session is currently recording.
func (s *Session) Recording() bool {
	return s.rec != nil
}

// StartRecording starts recording the session into w. Recordings must start before the first tick so
// that they can be replayed from the spawn state.
func (s *Session) StartRecording(w io.Writer) error {
	if s.rec != nil {
		s.log.Warnf("session is already recording")
		return nil
	}
	if s.Player.Ticks() > 0 {
		return oerror.Newk(oerror.KindConfig, "recording must start before the first tick (at tick %d)", s.Player.Ticks())
	}

	yaw, pitch := s.Player.Rotation()
	rec, err := NewRecorder(w, Header{
		Start:     s.Player.Pos(),
		Yaw:       yaw,
		Pitch:     pitch,
		Opts:      s.Player.Opts(),
		Abilities: s.abilities,
	})
	if err != nil {
		return err
	}
	s.rec = rec
	return nil
}

// StopRecording flushes and ends the current recording.
func (s *Session) StopRecording() error {
	if s.rec == nil {
		return nil
	}
	err := s.rec.Close()
	s.log.Debugf("recording stopped after %d ticks", s.rec.Len())
	s.rec = nil
	return err
}

// Step feeds one input frame to the player, simulates a tick and returns the events it produced.
func (s *Session) Step(frame input.Frame) ([]event.Event, error) {
	s.in.Push(frame)
	s.Player.Tick(s.dt, s.q)
	events := s.Player.DrainEvents()

	if s.rec != nil {
		err := s.rec.Record(Entry{
			Tick:   s.Player.Ticks(),
			Dt:     s.dt,
			Input:  frame,
			Digest: s.Player.Digest(),
		})
		if err != nil {
			return events, oerror.New("unable to record tick %d: %v", s.Player.Ticks(), err)
		}
	}
	return events, nil
}

// Close cancels every ability of the player and stops the recording.
func (s *Session) Close() error {
	s.Player.Shutdown()
	return s.StopRecording()
}
