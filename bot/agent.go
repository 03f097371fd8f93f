package bot

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	cfg "github.com/automoto/arenabots/config"
)

// Agent drives one bot combatant. It reads a roster snapshot every tick and
// emits an Intent; it never mutates world state.
type Agent struct {
	id          string
	team        string
	profile     Profile
	personality Personality
	preferred   cfg.RangeClass
	rng         Random
	logger      *log.Logger

	fsm    *Machine
	target targetState
	aim    aimState
	intent Intent

	// Movement
	moveDir      int
	strafeDir    int
	thinkTimer   float64
	strafeTimer  float64
	jumpCooldown float64
	pauseTimer   float64
	stuckTimer   float64
	lastX        float64

	abilityDelay         float64
	weaponSwitchCooldown float64

	emotes emoteState

	// Damage and idle tracking
	alive        bool
	healthKnown  bool
	lastHealth   float64
	healthFrac   float64
	recentDamage float64
	idleTime     float64

	rivalID      string
	revengeID    string
	revengeTimer float64

	camp campCrouch

	faulted bool

	tick tickContext
}

// tickContext is the read-only input of the tick being processed.
type tickContext struct {
	roster []Combatant
	self   *Combatant
	target *Combatant
	view   view
	mode   GameMode
	now    float64
	dt     float64
}

type options struct {
	rng         Random
	logger      *log.Logger
	personality *Personality
	preferred   *cfg.RangeClass
}

// Option configures an Agent at construction.
type Option func(*options)

// WithRandom routes every draw of the agent through r.
func WithRandom(r Random) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed gives the agent a deterministic PCG source.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = NewRandom(seed) }
}

// WithLogger sets the logger used for transitions and recovered faults.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPersonality skips personality sampling.
func WithPersonality(p Personality) Option {
	return func(o *options) { o.personality = &p }
}

// WithPreferredRange skips preferred range sampling.
func WithPreferredRange(r cfg.RangeClass) Option {
	return func(o *options) { o.preferred = &r }
}

// New creates the agent controlling the combatant with the given id.
func New(id string, tier cfg.BotDifficulty, opts ...Option) *Agent {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	a := &Agent{
		id:      id,
		profile: ProfileFor(tier),
		rng:     o.rng,
		logger:  o.logger.With("bot", id),
		intent:  Intent{WeaponSlot: NoWeaponSwitch},
	}
	if o.personality != nil {
		a.personality = *o.personality
	} else {
		a.personality = SamplePersonality(a.rng)
	}
	if o.preferred != nil {
		a.preferred = *o.preferred
	} else {
		a.preferred = SamplePreferredRange(a.rng)
	}
	a.fsm = newMachine(a.rng, a.onStateChange)

	// Stagger timers so bots don't all decide on the same frame
	a.thinkTimer = uniform(a.rng, 0.1, 1.5)
	a.moveDir = coinDir(a.rng)
	a.strafeTimer = uniform(a.rng, 0.5, 3)
	a.strafeDir = coinDir(a.rng)
	a.jumpCooldown = uniform(a.rng, 0, 1)

	return a
}

// onStateChange runs after every transition, including the reset on death.
func (a *Agent) onStateChange(from, to State, reason string) {
	if to == StateCamp {
		a.camp = campUndecided
	}
	a.logTransition(from, to, reason)
}

func (a *Agent) logTransition(from, to State, reason string) {
	if !cfg.Debug.LogTransitions {
		return
	}
	a.logger.Debug("state change", "from", from, "to", to, "reason", reason)
}

// force performs an executor exit; forbidden exits are logged and ignored.
func (a *Agent) force(to State, reason string) {
	if err := a.fsm.Force(to, reason); err != nil {
		a.logger.Warn("ignored forced transition", "err", err)
	}
}

// Update runs one tick. now is match time in milliseconds and dt the tick
// length in seconds. A panic raised by a collaborator is recovered, the
// intent is cleared and the bot stays inert until the next tick.
func (a *Agent) Update(roster []Combatant, arena Arena, mode GameMode, now, dt float64) (intent Intent) {
	defer func() {
		if r := recover(); r != nil {
			if !a.faulted {
				a.faulted = true
				a.logger.Warn("recovered bot fault", "panic", r)
			}
			a.intent.reset()
			intent = a.intent
		}
		a.tick = tickContext{}
	}()

	a.tick = tickContext{roster: roster, view: view{arena: arena}, mode: mode, now: now, dt: dt}

	self, ok := Lookup(roster, a.id).Present()
	if !ok || !self.Alive {
		a.resetForDeath(self, dt)
		return a.intent
	}
	a.tick.self = self
	a.team = self.Team
	a.alive = true
	a.step()
	return a.intent
}

// resetForDeath parks the agent while its combatant is dead or missing.
func (a *Agent) resetForDeath(self *Combatant, dt float64) {
	a.alive = false
	a.intent.reset()
	a.target.id = ""
	a.fsm.reset()
	if self != nil {
		a.lastHealth = self.MaxHealth
		a.healthKnown = true
	}
	a.idleTime = 0
	a.emotes.fade(dt)
}

func (a *Agent) step() {
	self := a.tick.self
	dt := a.tick.dt

	a.decayTimers(dt)
	a.assignRival()
	a.emotes.advance(a, dt)
	a.detectDamage(self)

	// Idle emote tracking uses the target held from the previous tick
	if a.target.id == "" {
		a.idleTime += dt
		a.tryIdleEmote()
	} else {
		a.idleTime = 0
	}

	a.intent.reset()
	a.trackStuck(self)

	a.updateTarget()

	a.thinkTimer -= dt
	if a.thinkTimer <= 0 {
		a.decide()
		a.thinkTimer = a.profile.DecisionSpeed * uniform(a.rng, 0.7, 1.3)
	}

	a.execute()

	// Aim smoothing runs every tick regardless of state
	a.updateAim(dt)
	a.intent.Aim = a.aim.current

	if t := a.tick.target; t != nil && a.weaponSwitchCooldown <= 0 {
		a.pickWeapon(distance(self.Center(), t.Center()))
		a.weaponSwitchCooldown = uniform(a.rng, 1, 3)
	}

	a.updateAbilities()

	if a.tick.mode == cfg.GameModeCaptureTheFlag {
		if flags, ok := a.tick.view.flags(); ok {
			a.ctfOverride(flags)
		}
	}

	a.finishTick(self)
}

func (a *Agent) decayTimers(dt float64) {
	a.jumpCooldown = max(0, a.jumpCooldown-dt)
	a.pauseTimer = max(0, a.pauseTimer-dt)
	a.emotes.cooldown = max(0, a.emotes.cooldown-dt)
	a.weaponSwitchCooldown = max(0, a.weaponSwitchCooldown-dt)
	a.abilityDelay = max(0, a.abilityDelay-dt)
	a.fsm.tick(dt)
	a.revengeTimer = max(0, a.revengeTimer-dt)
}

// assignRival picks a persistent rival among the live opponents once per
// match.
func (a *Agent) assignRival() {
	if a.rivalID != "" {
		return
	}
	var candidates []*Combatant
	for i := range a.tick.roster {
		o := &a.tick.roster[i]
		if hostile(a.tick.self, o) {
			candidates = append(candidates, o)
		}
	}
	if len(candidates) > 0 {
		a.rivalID = pick(a.rng, candidates).ID
		a.logger.Debug("rival assigned", "rival", a.rivalID)
	}
}

func (a *Agent) detectDamage(self *Combatant) {
	a.healthFrac = self.HealthFraction()
	if !a.healthKnown {
		a.lastHealth = self.Health
		a.healthKnown = true
	}
	if self.Health < a.lastHealth {
		dmg := a.lastHealth - self.Health
		a.recentDamage += dmg
		a.OnHit(dmg)
	}
	a.lastHealth = self.Health
	a.recentDamage = max(0, a.recentDamage-a.tick.dt*30)
}

func (a *Agent) trackStuck(self *Combatant) {
	state := a.fsm.State()
	if absf(self.X-a.lastX) < cfg.Bot.Combat.StuckEpsilon && (state == StateRoam || state == StateHunt) {
		a.stuckTimer += a.tick.dt
	} else {
		a.stuckTimer = 0
	}
	a.lastX = self.X
}

// finishTick applies the out-of-combat reload, the reload fire lock and stuck
// recovery.
func (a *Agent) finishTick(self *Combatant) {
	c := &cfg.Bot.Combat
	if w, ok := self.Weapon(); ok {
		if float64(w.Ammo) < float64(w.MagSize)*c.LowAmmoFraction && !w.Reloading && a.fsm.State() != StateEngage {
			a.intent.Reload = true
		}
		if w.Reloading {
			a.intent.Shoot = false
		}
	}

	if a.stuckTimer > c.StuckTime {
		a.intent.Jump = true
		a.stuckTimer = 0
		if chance(a.rng, 0.5) {
			a.moveDir = -a.moveDir
		}
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ID returns the id of the controlled combatant.
func (a *Agent) ID() string { return a.id }

// Intent returns the intent emitted by the last Update.
func (a *Agent) Intent() Intent { return a.intent }

// State returns the active behavior state.
func (a *Agent) State() State { return a.fsm.State() }

// Personality returns the sampled personality.
func (a *Agent) Personality() Personality { return a.personality }

// Difficulty returns the difficulty profile.
func (a *Agent) Difficulty() Profile { return a.profile }

// PreferredRange returns the range class the agent favors for weapons.
func (a *Agent) PreferredRange() cfg.RangeClass { return a.preferred }

// TargetID returns the current target, if any.
func (a *Agent) TargetID() (string, bool) { return a.target.id, a.target.id != "" }

// RivalID returns the rival assigned for this match, if any.
func (a *Agent) RivalID() (string, bool) { return a.rivalID, a.rivalID != "" }

// RevengeID returns the id of the last killer, if any.
func (a *Agent) RevengeID() (string, bool) { return a.revengeID, a.revengeID != "" }

// RevengeTimer returns the seconds left on the revenge focus.
func (a *Agent) RevengeTimer() float64 { return a.revengeTimer }

// Aim returns the current smoothed aim angle.
func (a *Agent) Aim() float64 { return a.aim.current }
