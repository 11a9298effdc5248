package player

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type DebugMode int

const (
	DebugModeProbe DebugMode = iota
	DebugModeIntegrator
	DebugModeStance
	DebugModeJump
	DebugModePipeline
	DebugModeAbilities
	debugModeCount
)

var DebugModeList = []string{
	"probe",
	"integrator",
	"stance",
	"jump",
	"pipeline",
	"abilities",
}

// DebugModeFromString returns the mode with the given name.
func DebugModeFromString(name string) (DebugMode, bool) {
	for i, m := range DebugModeList {
		if m == name {
			return DebugMode(i), true
		}
	}
	return 0, false
}

func (m DebugMode) String() string {
	if m < 0 || m >= debugModeCount {
		return fmt.Sprintf("debug_mode(%d)", int(m))
	}
	return DebugModeList[m]
}

// Debugger routes verbose per-tick messages to the player's logger for the modes that are enabled.
type Debugger struct {
	log   *logrus.Logger
	modes [debugModeCount]bool
}

func NewDebugger(log *logrus.Logger) *Debugger {
	return &Debugger{log: log}
}

// Toggle flips the given mode and returns its new state.
func (d *Debugger) Toggle(mode DebugMode) bool {
	if mode < 0 || mode >= debugModeCount {
		return false
	}
	d.modes[mode] = !d.modes[mode]
	return d.modes[mode]
}

func (d *Debugger) Set(mode DebugMode, enabled bool) {
	if mode >= 0 && mode < debugModeCount {
		d.modes[mode] = enabled
	}
}

func (d *Debugger) Enabled(mode DebugMode) bool {
	return mode >= 0 && mode < debugModeCount && d.modes[mode]
}

// Notify logs the message if the mode is enabled and cond holds.
func (d *Debugger) Notify(mode DebugMode, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.Debugf("["+mode.String()+"] "+format, args...)
}
