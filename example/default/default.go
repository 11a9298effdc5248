package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/player/event"
	"github.com/oomph-ac/strafe/session"
	"github.com/oomph-ac/strafe/settings"
	"github.com/oomph-ac/strafe/world"
	"github.com/sirupsen/logrus"
)

const tickRate = 60

// The following program runs a player through a small course with scripted input and logs every event
// it produces.
func main() {
	if len(os.Args) > 3 {
		fmt.Println("Usage: ./bin [ticks] [recording_file]")
		return
	}
	ticks := 600
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Println("ticks must be a positive integer")
			return
		}
		ticks = n
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	logger.SetLevel(logrus.DebugLevel)

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			logger.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	s, err := settings.LoadOrCreate("strafe.toml")
	if err != nil {
		logger.Fatalf("unable to load settings: %v", err)
	}

	sess, err := session.New(logger, s.Player, s.Abilities, session.Start{Pos: mgl32.Vec3{0, 0.02, 0}}, course(), 1.0/tickRate)
	if err != nil {
		logger.Fatalf("unable to create session: %v", err)
	}
	sess.Player.Dbg.Set(player.DebugModeJump, true)
	sess.Player.Dbg.Set(player.DebugModeAbilities, true)

	if len(os.Args) > 2 {
		f, err := os.Create(os.Args[2])
		if err != nil {
			logger.Fatalf("unable to create recording file: %v", err)
		}
		defer f.Close()
		if err := sess.StartRecording(f); err != nil {
			logger.Fatalf("unable to start recording: %v", err)
		}
	}

	run(logger, sess, ticks)
	if err := sess.Close(); err != nil {
		logger.Errorf("unable to close session: %v", err)
	}
	logger.Infof("finished at %v after %d ticks (digest %016x)", sess.Player.Pos(), sess.Player.Ticks(), sess.Player.Digest())
}

// run steps the session, reporting any panic of the simulation to sentry.
func run(logger *logrus.Logger, sess *session.Session, ticks int) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("simulation panic at tick %d: %v", sess.Player.Ticks(), err)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("tick", strconv.FormatUint(sess.Player.Ticks(), 10))
			})

			hub.Recover(oerror.New("%v", err))
			hub.Flush(time.Second * 5)
		}
	}()

	for i := 0; i < ticks; i++ {
		events, err := sess.Step(script(i))
		if err != nil {
			logger.Errorf("tick %d: %v", i, err)
			return
		}
		for _, ev := range events {
			logEvent(logger, sess.Player.Ticks(), ev)
		}
	}
}

// course builds a floor with a low ledge to vault, a tall ledge to climb, a wall to run along and a
// ramp to slide down.
func course() *world.World {
	w := world.New()
	w.AddBox(cube.Box(-100, -1, -100, 100, 0, 100), world.LayerStatic)
	w.AddBox(cube.Box(-3, 0, 10, 3, 1, 12), world.LayerStatic)
	w.AddBox(cube.Box(-3, 0, 25, 3, 2.2, 28), world.LayerStatic)
	w.AddBox(cube.Box(1.2, 0, 35, 1.6, 6, 60), world.LayerStatic)

	normal := mgl32.Vec3{0, 1, 0.4}.Normalize()
	w.AddRamp(cube.Box(-3, 0, 62, 3, 4, 72), normal, mgl32.Vec3{0, 4, 62}, world.LayerStatic)
	return w
}

// script returns the input for the given tick: the player runs forward the whole time, jumps over the
// low ledge, jumps at the tall one and climbs it, jumps onto the wall and slides once it reaches the ramp.
func script(tick int) input.Frame {
	f := input.Frame{Move: mgl32.Vec2{0, 1}}.Holding(input.ActionSprint)
	switch {
	case tick == 140:
		f = f.Holding(input.ActionJump)
	case tick == 300:
		f = f.Holding(input.ActionJump)
	case tick > 300 && tick < 360:
		f = f.Holding(input.ActionVault)
	case tick == 420:
		f = f.Holding(input.ActionJump)
	case tick >= 520:
		f = f.Holding(input.ActionCrouch)
	}
	return f
}

func logEvent(logger *logrus.Logger, tick uint64, ev event.Event) {
	entry := logger.WithField("tick", tick)
	switch ev := ev.(type) {
	case event.Land:
		entry.Infof("%s: airtime=%.3f impact=%.3f fall=%.3f", ev.ID(), ev.Airtime, ev.ImpactVelocity, ev.FallHeight)
	case event.AbilityStart:
		entry.Infof("%s: %s (%s)", ev.ID(), ev.Ability, ev.Type)
	case event.AbilityEnd:
		entry.Infof("%s: %s (%s) cancelled=%t", ev.ID(), ev.Ability, ev.Type, ev.Cancelled)
	default:
		entry.Infof("%s: %+v", ev.ID(), ev)
	}
}
