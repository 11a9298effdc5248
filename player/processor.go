package player

import (
	"slices"

	"github.com/oomph-ac/strafe/oerror"
)

// Processor is a movement modifier run after the base simulation every tick. Processors run in
// ascending Priority order; ties keep registration order.
type Processor interface {
	// Name identifies the processor in logs and events.
	Name() string
	Priority() int
	// OnBeforeMove is called after the base integrator and the displacement of the tick.
	OnBeforeMove(p *Player)
	// OnBeforeLook is called before the look input of the tick is applied.
	OnBeforeLook(p *Player)
	// Cancel ends any in-progress ability and releases every gate token the processor holds.
	Cancel(p *Player)
}

// RegisterProcessor adds a processor to the pipeline. The pipeline is fixed once the player has
// ticked.
func (p *Player) RegisterProcessor(proc Processor) error {
	if p.pipelineFrozen {
		return oerror.Newk(oerror.KindConfig, "processor %s registered after the pipeline started", proc.Name())
	}
	p.processors = append(p.processors, proc)
	slices.SortStableFunc(p.processors, func(a, b Processor) int {
		return a.Priority() - b.Priority()
	})
	return nil
}

// Processors returns the pipeline in execution order.
func (p *Player) Processors() []Processor {
	return slices.Clone(p.processors)
}

// Processor returns the registered processor with the given name.
func (p *Player) Processor(name string) (Processor, bool) {
	for _, proc := range p.processors {
		if proc.Name() == name {
			return proc, true
		}
	}
	return nil, false
}

func (p *Player) runBeforeMove() {
	for _, proc := range p.processors {
		p.Dbg.Notify(DebugModePipeline, true, "%s.OnBeforeMove", proc.Name())
		proc.OnBeforeMove(p)
	}
}

func (p *Player) runBeforeLook() {
	for _, proc := range p.processors {
		proc.OnBeforeLook(p)
	}
}

// Shutdown cancels every processor so that no gate token outlives the pipeline. It is the
// external cancellation path for scene unloads and teardown.
func (p *Player) Shutdown() {
	for _, proc := range p.processors {
		proc.Cancel(p)
	}
	p.log.Debugf("player shut down (%d processors cancelled)", len(p.processors))
}
