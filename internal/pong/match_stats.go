package pong

// PointRecord is one rally outcome.
type PointRecord struct {
	Tick   int
	Scorer Player
	Hits   int     // paddle hits during the rally
	Speed  float64 // ball speed when the rally ended
}

// MatchStats accumulates rally statistics for the current match.
type MatchStats struct {
	Rallies      int
	PaddleHits   [2]int
	LongestRally int // most paddle hits in one rally
	TopSpeed     float64
	Points       []PointRecord

	rallyHits int
}

// NewMatchStats returns empty stats.
func NewMatchStats() *MatchStats {
	return &MatchStats{}
}

// Reset clears everything for a new match.
func (s *MatchStats) Reset() {
	*s = MatchStats{}
}

func (s *MatchStats) startRally(speed float64) {
	s.Rallies++
	s.rallyHits = 0
	if speed > s.TopSpeed {
		s.TopSpeed = speed
	}
}

func (s *MatchStats) recordHit(p Player, speed float64) {
	switch p {
	case Player1:
		s.PaddleHits[0]++
	case Player2:
		s.PaddleHits[1]++
	}
	s.rallyHits++
	if s.rallyHits > s.LongestRally {
		s.LongestRally = s.rallyHits
	}
	if speed > s.TopSpeed {
		s.TopSpeed = speed
	}
}

func (s *MatchStats) recordPoint(tick int, scorer Player, speed float64) {
	s.Points = append(s.Points, PointRecord{Tick: tick, Scorer: scorer, Hits: s.rallyHits, Speed: speed})
	s.rallyHits = 0
}

// CurrentRallyHits returns the paddle hits in the rally in progress.
func (s *MatchStats) CurrentRallyHits() int {
	return s.rallyHits
}

// MeanRallyHits is the average number of paddle hits per finished rally.
func (s *MatchStats) MeanRallyHits() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	total := 0
	for _, p := range s.Points {
		total += p.Hits
	}
	return float64(total) / float64(len(s.Points))
}
