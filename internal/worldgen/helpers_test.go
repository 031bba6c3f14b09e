package worldgen

// script replays fixed draws, then returns rest forever.
type script struct {
	draws []float64
	i     int
	rest  float64
}

func (s *script) Float64() float64 {
	if s.i < len(s.draws) {
		v := s.draws[s.i]
		s.i++
		return v
	}
	return s.rest
}

func newScript(rest float64, draws ...float64) *script {
	return &script{draws: draws, rest: rest}
}
