package pong

// resolveCollisions runs the two collision passes for this tick. The
// horizontal pass (paddles, then side walls) and the vertical pass (top and
// bottom walls) are independent, so one of each may fire in a single tick.
// Nothing is resolved while the ball is fading: it is out of play.
func (m *Match) resolveCollisions() {
	if m.ball.Fade.InProgress() {
		return
	}
	m.resolveHorizontal()
	if m.ball.Fade.InProgress() {
		return
	}
	m.resolveVertical()
}

func (m *Match) resolveHorizontal() {
	b := &m.ball
	p1, p2 := &m.paddles[0], &m.paddles[1]
	w, h := m.geo.PaddleWidth, m.geo.PaddleHeight

	switch {
	case b.LastCollision != CollisionPlayer1 &&
		b.LeftEdge() < p1.X+w && b.LeftEdge() > p1.X &&
		b.BottomEdge() > p1.Y && b.TopEdge() < p1.Y+h:
		m.paddleBounce(Player1)

	case b.LastCollision != CollisionPlayer2 &&
		b.RightEdge() > p2.X && b.RightEdge() < p2.X+w &&
		b.BottomEdge() > p2.Y && b.TopEdge() < p2.Y+h:
		m.paddleBounce(Player2)

	case b.LastCollision != CollisionLeftWall && b.LeftEdge() < m.arena.Left:
		b.LastCollision = CollisionLeftWall
		m.sideOut(Player2)

	case b.LastCollision != CollisionRightWall && b.RightEdge() > m.arena.Right:
		b.LastCollision = CollisionRightWall
		m.sideOut(Player1)
	}
}

func (m *Match) resolveVertical() {
	b := &m.ball
	switch {
	case b.LastCollision != CollisionTopWall && b.TopEdge() < m.arena.Top:
		m.wallBounce(CollisionTopWall)
	case b.LastCollision != CollisionBottomWall && b.BottomEdge() > m.arena.Bottom:
		m.wallBounce(CollisionBottomWall)
	}
}

// paddleBounce speeds the ball up and sends it back with the deflection
// for where it struck the paddle.
func (m *Match) paddleBounce(side Player) {
	b := &m.ball
	pd := m.paddle(side)
	if side == Player1 {
		b.LastCollision = CollisionPlayer1
	} else {
		b.LastCollision = CollisionPlayer2
	}

	b.Accelerate(m.geo.MaxBallSpeed())
	b.Angle = 180 - b.Angle
	ratio := DeflectionRatio(b.Y, pd.MidY(m.geo), m.geo.PaddleHeight, b.Radius)
	b.Angle = Deflect(b.Angle, ratio, side)
	b.Angle = CorrectAngle(b.Angle)
	b.UpdateVelocity()

	m.stats.recordHit(side, b.Speed)
	m.emit(Event{Kind: EventPaddleHit, Player: side, Collision: b.LastCollision, Angle: b.Angle, Speed: b.Speed})
}

// wallBounce mirrors the ball off the top or bottom wall.
func (m *Match) wallBounce(wall Collision) {
	b := &m.ball
	b.LastCollision = wall
	b.Angle = TidyAngle(-b.Angle)
	b.Angle = CorrectAngle(b.Angle)
	b.UpdateVelocity()

	m.emit(Event{Kind: EventWallBounce, Collision: wall, Angle: b.Angle, Speed: b.Speed})
}

// sideOut handles the ball leaving past a side wall: scorer wins the rally.
// The next serve goes toward the scorer.
func (m *Match) sideOut(scorer Player) {
	m.emit(Event{Kind: EventOut, Player: scorer, Collision: m.ball.LastCollision, Speed: m.ball.Speed})
	if m.victoryCheck(scorer) {
		return
	}
	m.resetBall(scorer, scorer)
}
