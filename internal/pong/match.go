package pong

import (
	"fmt"
	"math/rand"
	"time"
)

// WinningScore is the nominal points total for a match.
const WinningScore = 11

// DefaultFadeDuration is how long the ball takes to fade out or in.
const DefaultFadeDuration = 1000 * time.Millisecond

// MatchState is the match-level phase.
type MatchState int

const (
	BetweenGames MatchState = iota
	Playing
	Paused
	VictorySequence
)

func (s MatchState) String() string {
	switch s {
	case BetweenGames:
		return "between_games"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case VictorySequence:
		return "victory"
	default:
		return "unknown"
	}
}

// Scores holds both players' points.
type Scores struct {
	P1      int
	P2      int
	Winning int
}

// Of returns the given player's score. PlayerNone scores nothing.
func (s Scores) Of(p Player) int {
	switch p {
	case Player1:
		return s.P1
	case Player2:
		return s.P2
	default:
		return 0
	}
}

func (s *Scores) award(p Player) {
	switch p {
	case Player1:
		s.P1++
	case Player2:
		s.P2++
	}
}

// Match owns one session: arena, paddles, ball, scores and the state
// machine driving them. A Match is not safe for concurrent use; all calls
// must come from the shell's single update goroutine.
type Match struct {
	arena Arena
	geo   Geometry

	paddles [2]Paddle
	ball    Ball
	scores  Scores
	state   MatchState
	victor  Player

	driver       Driver
	tickPeriod   time.Duration
	fadeDuration time.Duration
	elapsed      time.Duration // match clock, advanced one period per tick
	tick         int

	rng       *rand.Rand
	log       *MatchLog
	stats     *MatchStats
	listeners []func(Event)
}

// Option configures a Match at construction.
type Option func(*Match)

// WithTickPeriod sets the fixed step length.
func WithTickPeriod(d time.Duration) Option {
	return func(m *Match) {
		if d > 0 {
			m.tickPeriod = d
		}
	}
}

// WithFadeDuration sets the ball fade length.
func WithFadeDuration(d time.Duration) Option {
	return func(m *Match) {
		if d > 0 {
			m.fadeDuration = d
		}
	}
}

// WithRand supplies the random source used for serve angles.
func WithRand(rng *rand.Rand) Option {
	return func(m *Match) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSeed seeds the serve-angle random source.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		m.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
}

// WithLog attaches an event log.
func WithLog(l *MatchLog) Option {
	return func(m *Match) {
		m.log = l
	}
}

// NewMatch builds a match on the default canvas, waiting between games.
func NewMatch(opts ...Option) *Match {
	arena := NewArena(DefaultCanvasWidth, DefaultCanvasHeight)
	geo := NewGeometry(arena)
	m := &Match{
		arena:        arena,
		geo:          geo,
		paddles:      newPaddles(arena, geo),
		ball:         newBall(arena, geo),
		scores:       Scores{Winning: WinningScore},
		state:        BetweenGames,
		tickPeriod:   DefaultTickPeriod,
		fadeDuration: DefaultFadeDuration,
		stats:        NewMatchStats(),
	}
	for _, o := range opts {
		o(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	return m
}

// --- Accessors ---

func (m *Match) Arena() Arena                { return m.arena }
func (m *Match) Geometry() Geometry          { return m.geo }
func (m *Match) Ball() Ball                  { return m.ball }
func (m *Match) Paddle(p Player) Paddle      { return *m.paddle(p) }
func (m *Match) Scores() Scores              { return m.scores }
func (m *Match) State() MatchState           { return m.state }
func (m *Match) Victor() Player              { return m.victor }
func (m *Match) TickCount() int              { return m.tick }
func (m *Match) Elapsed() time.Duration      { return m.elapsed }
func (m *Match) Period() time.Duration       { return m.tickPeriod }
func (m *Match) FadeDuration() time.Duration { return m.fadeDuration }
func (m *Match) Running() bool               { return m.driver.Running() }
func (m *Match) Log() *MatchLog              { return m.log }
func (m *Match) Stats() *MatchStats          { return m.stats }

func (m *Match) paddle(p Player) *Paddle {
	if p == Player2 {
		return &m.paddles[1]
	}
	return &m.paddles[0]
}

// --- Input ---

// SetIntent sets both movement flags for a player's paddle.
func (m *Match) SetIntent(p Player, up, down bool) {
	if p != Player1 && p != Player2 {
		return
	}
	pd := m.paddle(p)
	pd.MovingUp = up
	pd.MovingDown = down
}

// Space is the single discrete action: start a match from between games,
// otherwise toggle pause.
func (m *Match) Space() bool {
	if m.state == BetweenGames {
		return m.NewGame()
	}
	return m.TogglePause()
}

// --- Match state machine ---

func (m *Match) setState(s MatchState) {
	if s == m.state {
		return
	}
	from := m.state
	m.state = s
	m.emit(Event{Kind: EventStateChange, From: from, To: s})
}

// NewGame zeroes the scores, spawns a ball toward player 1 and starts the
// tick driver. Only valid between games.
func (m *Match) NewGame() bool {
	if m.state != BetweenGames {
		return false
	}
	m.scores.P1 = 0
	m.scores.P2 = 0
	m.victor = PlayerNone
	m.stats.Reset()
	if m.log != nil {
		m.log.Reset()
	}

	m.setState(Playing)
	m.driver.Start(m.tickPeriod)
	m.newBall(Player1, PlayerNone)
	return true
}

// Pause stops the tick driver. Only valid while playing, and refused while
// the ball is fading so a respawn never straddles a pause.
func (m *Match) Pause() bool {
	if m.state != Playing || m.ball.Fade.InProgress() {
		return false
	}
	m.driver.Stop()
	m.setState(Paused)
	return true
}

// Resume restarts the tick driver from exactly where it stopped.
func (m *Match) Resume() bool {
	if m.state != Paused {
		return false
	}
	m.setState(Playing)
	m.driver.Start(m.tickPeriod)
	return true
}

// TogglePause flips between Playing and Paused.
func (m *Match) TogglePause() bool {
	switch m.state {
	case Playing:
		return m.Pause()
	case Paused:
		return m.Resume()
	}
	return false
}

// --- Tick driver ---

// Advance feeds real elapsed time to the driver and runs every tick that is
// owed. It returns the number of ticks run.
func (m *Match) Advance(dt time.Duration) int {
	n := m.driver.feed(dt)
	ran := 0
	for i := 0; i < n && m.driver.Running(); i++ {
		m.Tick()
		ran++
	}
	return ran
}

// Tick runs one fixed step: paddles, ball, fade, collisions. It is a no-op
// while the driver is stopped (between games or paused).
func (m *Match) Tick() {
	if !m.driver.Running() {
		return
	}
	m.tick++
	m.elapsed += m.tickPeriod

	m.advancePaddles()
	m.ball.Integrate()
	m.advanceFade()
	if m.driver.Running() {
		m.resolveCollisions()
	}

	if m.log != nil && m.log.Verbose() {
		m.log.AddVerbose(m.tick, "--", "move", "ball",
			fmt.Sprintf("(%.1f,%.1f)", m.ball.X, m.ball.Y), m.ball.Speed)
		m.log.AddVerbose(m.tick, "p1", "move", "paddle", fmt.Sprintf("%.1f", m.paddles[0].Y), m.paddles[0].Y)
		m.log.AddVerbose(m.tick, "p2", "move", "paddle", fmt.Sprintf("%.1f", m.paddles[1].Y), m.paddles[1].Y)
	}
}

func (m *Match) advancePaddles() {
	for i := range m.paddles {
		m.paddles[i].Advance(m.arena, m.geo)
	}
}

// --- Fades, respawn and victory ---

func (m *Match) advanceFade() {
	f := &m.ball.Fade
	f.advance()
	if !f.due(m.elapsed) {
		return
	}
	if f.State == FadingOut && m.log != nil {
		m.log.Add(m.tick, "--", "fade", "out_done", "", 0)
	} else if f.State == FadingIn && m.log != nil {
		m.log.Add(m.tick, "--", "fade", "in_done", "", 0)
	}

	next := f.finish()
	switch next.then {
	case thenRespawn:
		m.newBall(next.receiver, next.scorer)
	case thenLaunch:
		m.launch(next.receiver)
	case thenVictory:
		m.endMatch(next.scorer)
	}
}

func (m *Match) fade(state FadeState, next fadeTransition) {
	m.ball.Fade.start(state, m.fadeDuration, m.tickPeriod, m.elapsed, next)
	if m.log != nil {
		m.log.Add(m.tick, "--", "fade", state.String(), next.receiver.String(), 0)
	}
}

// victoryCheck starts the victory sequence when the scorer's current score
// exceeds Winning-2. The final point is awarded when the sequence ends.
func (m *Match) victoryCheck(scorer Player) bool {
	if m.scores.Of(scorer) > m.scores.Winning-2 {
		m.victorySequence(scorer)
		return true
	}
	return false
}

// resetBall removes the ball, then respawns it at the centre.
func (m *Match) resetBall(receiver, scorer Player) {
	m.ball.Stop()
	m.fade(FadingOut, fadeTransition{then: thenRespawn, receiver: receiver, scorer: scorer})
}

// newBall recentres the ball, credits the scorer and fades the ball back in.
func (m *Match) newBall(receiver, scorer Player) {
	m.ball.Centre(m.arena)
	m.ball.Stop()
	m.ball.LastCollision = CollisionNewBall

	if scorer != PlayerNone {
		m.scores.award(scorer)
		m.stats.recordPoint(m.tick, scorer, m.ball.Speed)
		m.emit(Event{Kind: EventPoint, Player: scorer})
	}

	m.fade(FadingIn, fadeTransition{then: thenLaunch, receiver: receiver})
}

// launch serves the ball toward the receiver at minimum speed.
func (m *Match) launch(receiver Player) {
	m.ball.Angle = ServeAngle(receiver, m.rng.Float64())
	m.ball.Speed = m.ball.MinSpeed
	m.ball.UpdateVelocity()
	m.stats.startRally(m.ball.Speed)
	m.emit(Event{Kind: EventServe, Player: receiver, Angle: m.ball.Angle, Speed: m.ball.Speed})
}

func (m *Match) victorySequence(victor Player) {
	m.setState(VictorySequence)
	m.ball.Stop()
	m.fade(FadingOut, fadeTransition{then: thenVictory, scorer: victor})
}

// endMatch stops the game and awards the winning point.
func (m *Match) endMatch(victor Player) {
	m.driver.Stop()
	m.scores.award(victor)
	m.stats.recordPoint(m.tick, victor, m.ball.Speed)
	m.victor = victor
	m.setState(BetweenGames)
	m.emit(Event{Kind: EventVictory, Player: victor})
}
