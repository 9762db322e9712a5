package starfield

import "starfield/demolib/vmath"

// Star is one particle radiating from the surface centre.
//
// StartPos, Direction, Angle and SpeedModifier are fixed between respawns.
// Distance, Speed, Size, TrailSize and TrailAlpha are recomputed by every
// update from the distance travelled; nothing else writes them.
type Star struct {
	StartPos vmath.Vec2
	CurrPos  vmath.Vec2

	Direction vmath.Vec2
	Angle     float64

	Distance   float64
	Speed      float64
	Size       float64
	TrailSize  float64
	TrailAlpha float64

	SpeedModifier float64
}

// TrailEnd is the far end of the trail segment behind the star.
func (s *Star) TrailEnd() vmath.Vec2 {
	return s.CurrPos.Sub(s.Direction.Scale(s.TrailSize))
}
