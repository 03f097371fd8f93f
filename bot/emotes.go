package bot

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	cfg "github.com/automoto/arenabots/config"
)

var (
	killEmotes     = []string{"😎", "💪", "😂", "🎉", "💀", "🔥", "✌️", "👑"}
	panicEmotes    = []string{"😱", "💀", "🫣", "😰"}
	surpriseEmotes = []string{"😮", "😤", "🤕", "😵"}
	hitEmotes      = []string{"😮", "😠", "🤨", "😬"}
	deathEmotes    = []string{"😭", "🤦", "😅", "💀", "😵", "🫠", "👻", "😤"}
	idleEmotes     = []string{"🤔", "💃", "💤", "👀", "🎵", "🥱", "😐", "🫧"}
	pickupEmotes   = []string{"🔫", "😏", "🤩", "💪", "🏆"}
	teamEmotes     = []string{"🙌", "👏", "🔥", "💪", "👀"}
	spotEmotes     = []string{"👀", "😈", "🎯"}
)

// popDuration is the length of the pop-in scale tween in seconds.
const popDuration = 0.25

// Emote is the reaction currently shown above a bot.
type Emote struct {
	Icon string
	// Remaining display time in seconds
	Remaining float64
	// Scale of the pop-in animation, 0 to slightly above 1
	Scale float32
}

type emoteState struct {
	cooldown float64

	pending     string
	pendingLife float64
	delay       float64

	icon  string
	life  float64
	pop   *gween.Tween
	scale float32
}

func (e *emoteState) display(icon string, life float64) {
	e.icon = icon
	e.life = life
	e.scale = 0
	e.pop = gween.New(0, 1, popDuration, ease.OutBack)
}

// fade ages the shown emote.
func (e *emoteState) fade(dt float64) {
	if e.icon == "" {
		return
	}
	if e.pop != nil {
		s, done := e.pop.Update(float32(dt))
		e.scale = s
		if done {
			e.pop = nil
		}
	}
	e.life -= dt
	if e.life <= 0 {
		e.icon = ""
		e.life = 0
		e.pop = nil
	}
}

// advance counts down a pending emote and ages the shown one.
func (e *emoteState) advance(a *Agent, dt float64) {
	if e.pending != "" && e.delay > 0 {
		e.delay -= dt
		if e.delay <= 0 {
			icon, life := e.pending, e.pendingLife
			e.pending = ""
			a.showEmote(icon, life)
		}
	}
	e.fade(dt)
}

// showEmote displays icon and starts the emote cooldown.
func (a *Agent) showEmote(icon string, life float64) {
	if a.emotes.cooldown > 0 || !a.alive {
		return
	}
	a.emotes.display(icon, life)
	a.emotes.cooldown = uniform(a.rng, 3, 8)
}

// queueEmote shows icon after delay seconds. Ignored while an emote is
// cooling down or already pending.
func (a *Agent) queueEmote(icon string, delay, life float64) {
	if a.emotes.cooldown > 0 || a.emotes.pending != "" {
		return
	}
	if delay <= 0 {
		a.showEmote(icon, life)
		return
	}
	a.emotes.pending = icon
	a.emotes.pendingLife = life
	a.emotes.delay = delay
}

func (a *Agent) tryIdleEmote() {
	if a.idleTime < 3 || !chance(a.rng, 0.003) {
		return
	}
	a.queueEmote(pick(a.rng, idleEmotes), uniform(a.rng, 0, 0.3), uniform(a.rng, 1.5, 2.5))
	a.idleTime = 0
}

// Emote returns the emote currently on display.
func (a *Agent) Emote() (Emote, bool) {
	if a.emotes.icon == "" {
		return Emote{}, false
	}
	return Emote{Icon: a.emotes.icon, Remaining: a.emotes.life, Scale: a.emotes.scale}, true
}

// PendingEmote returns the queued emote and its remaining delay.
func (a *Agent) PendingEmote() (string, float64, bool) {
	return a.emotes.pending, a.emotes.delay, a.emotes.pending != ""
}

// OnKill is called when the agent's combatant kills someone.
func (a *Agent) OnKill() {
	a.revengeID = ""
	a.revengeTimer = 0
	if !chance(a.rng, a.personality.EmoteChance*4) {
		return
	}
	a.queueEmote(pick(a.rng, killEmotes), uniform(a.rng, 0.3, 1.0), 1.8)
}

// OnHit reacts to significant damage taken.
func (a *Agent) OnHit(damage float64) {
	if damage < 15 {
		return
	}
	hp := a.healthFrac
	p := 0.12
	if damage > 40 {
		p = 0.35
	}
	if hp < 0.3 {
		p = 0.45
	}
	if !chance(a.rng, p) {
		return
	}

	pool := hitEmotes
	switch {
	case hp < 0.2:
		pool = panicEmotes
	case damage > 40:
		pool = surpriseEmotes
	}
	a.queueEmote(pick(a.rng, pool), uniform(a.rng, 0.1, 0.4), 1.0)
}

// OnDeath records the killer as revenge target. killerID is empty for
// deaths without a killer.
func (a *Agent) OnDeath(killerID string) {
	if killerID != "" {
		a.revengeID = killerID
		a.revengeTimer = cfg.Bot.Targeting.RevengeDuration
	}

	if a.emotes.cooldown > 0 {
		return
	}
	if !chance(a.rng, max(a.personality.EmoteChance*5, 0.3)) {
		return
	}
	a.emotes.display(pick(a.rng, deathEmotes), 2.0)
}

// OnPickup reacts to picking up a weapon.
func (a *Agent) OnPickup(weaponName string) {
	if !chance(a.rng, 0.4) {
		return
	}
	a.logger.Debug("picked up weapon", "weapon", weaponName)
	a.queueEmote(pick(a.rng, pickupEmotes), uniform(a.rng, 0.1, 0.5), 1.2)
}

// OnTeammateKill reacts to a kill by a member of the agent's team.
func (a *Agent) OnTeammateKill(teammate *Combatant) {
	if a.team == "" || teammate == nil || teammate.Team != a.team {
		return
	}
	if !chance(a.rng, 0.2) {
		return
	}
	a.queueEmote(pick(a.rng, teamEmotes), uniform(a.rng, 0.5, 1.5), 1.2)
}

// OnSpotEnemy reacts to a nearby enemy appearing.
func (a *Agent) OnSpotEnemy(dist float64) {
	if dist > cfg.Bot.Targeting.SpotRange || !chance(a.rng, 0.08) {
		return
	}
	a.queueEmote(pick(a.rng, spotEmotes), uniform(a.rng, 0.2, 0.6), 1.0)
}
