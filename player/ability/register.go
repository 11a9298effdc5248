package ability

import (
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/player"
)

// Opts holds the options of every ability.
type Opts struct {
	Vault   VaultOpts
	Climb   ClimbOpts
	Slide   SlideOpts
	WallRun WallRunOpts
	Dash    DashOpts
	Noclip  NoclipOpts
}

func DefaultOpts() Opts {
	return Opts{
		Vault:   DefaultVaultOpts(),
		Climb:   DefaultClimbOpts(),
		Slide:   DefaultSlideOpts(),
		WallRun: DefaultWallRunOpts(),
		Dash:    DefaultDashOpts(),
		Noclip:  DefaultNoclipOpts(),
	}
}

// Validate returns an error if any enabled ability is misconfigured.
func (o Opts) Validate() error {
	switch {
	case o.Vault.Enabled && (o.Vault.MinHeight <= 0 || o.Vault.MaxHeight < o.Vault.MinHeight):
		return oerror.Newk(oerror.KindConfig, "vault height range [%v, %v] is invalid", o.Vault.MinHeight, o.Vault.MaxHeight)
	case o.Climb.Enabled && (o.Climb.MinHeight <= 0 || o.Climb.MaxHeight < o.Climb.MinHeight):
		return oerror.Newk(oerror.KindConfig, "climb height range [%v, %v] is invalid", o.Climb.MinHeight, o.Climb.MaxHeight)
	case o.Slide.Enabled && o.Slide.MaxSpeed < o.Slide.MinSpeed:
		return oerror.Newk(oerror.KindConfig, "slide max speed %v is under its min speed %v", o.Slide.MaxSpeed, o.Slide.MinSpeed)
	case o.WallRun.Enabled && o.WallRun.MaxDuration <= 0:
		return oerror.Newk(oerror.KindConfig, "wall-run max duration must be positive")
	case o.Dash.Enabled && o.Dash.MaxAirDashes < 0:
		return oerror.Newk(oerror.KindConfig, "dash max air dashes must not be negative")
	case o.Noclip.Enabled && (o.Noclip.MinScale <= 0 || o.Noclip.MaxScale < o.Noclip.MinScale):
		return oerror.Newk(oerror.KindConfig, "noclip scale range [%v, %v] is invalid", o.Noclip.MinScale, o.Noclip.MaxScale)
	}
	return nil
}

// Register builds every enabled ability and registers it with the player.
func Register(p *player.Player, opts Opts) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	var procs []player.Processor
	if opts.Vault.Enabled {
		procs = append(procs, NewVault(p, opts.Vault))
	}
	if opts.Climb.Enabled {
		procs = append(procs, NewClimb(p, opts.Climb))
	}
	if opts.Slide.Enabled {
		procs = append(procs, NewSlide(p, opts.Slide))
	}
	if opts.WallRun.Enabled {
		procs = append(procs, NewWallRun(p, opts.WallRun))
	}
	if opts.Dash.Enabled {
		procs = append(procs, NewDash(p, opts.Dash))
	}
	if opts.Noclip.Enabled {
		procs = append(procs, NewNoclip(p, opts.Noclip))
	}

	for _, proc := range procs {
		if err := p.RegisterProcessor(proc); err != nil {
			return err
		}
	}
	return nil
}
