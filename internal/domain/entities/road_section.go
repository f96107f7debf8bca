package entities

// RoadSection is the immutable reference a phase is bound to. PKs (picket
// values) are chainage distances along the road.
type RoadSection struct {
	ID      string
	Slug    string
	Name    string
	Length  float64
	StartPK float64
	EndPK   float64
}
