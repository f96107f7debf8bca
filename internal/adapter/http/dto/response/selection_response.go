package response

import (
	"roadinspect/internal/usecase"
)

type SideBookingResponse struct {
	Left       bool    `json:"left"`
	Right      bool    `json:"right"`
	Both       bool    `json:"both"`
	LockedSide *string `json:"locked_side"`
}

type LayerOptionResponse struct {
	Name       string `json:"name"`
	Stage      int    `json:"stage"`
	Selected   bool   `json:"selected"`
	Selectable bool   `json:"selectable"`
	Locked     bool   `json:"locked"`
}

type CheckOptionResponse struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Selected bool     `json:"selected"`
}

type SelectionResponse struct {
	Booking       SideBookingResponse   `json:"booking"`
	PointHasSides bool                  `json:"point_has_sides"`
	Layers        []LayerOptionResponse `json:"layers"`
	Checks        []CheckOptionResponse `json:"checks"`
	Types         []string              `json:"types"`
}

func FromSelectionView(v usecase.SelectionView) SelectionResponse {
	out := SelectionResponse{
		PointHasSides: v.PointHasSides,
		Types:         v.Types,
		Booking: SideBookingResponse{
			Left:  v.Booking.Left,
			Right: v.Booking.Right,
			Both:  v.Booking.Both,
		},
	}
	if v.Booking.LockedSide != nil {
		side := string(*v.Booking.LockedSide)
		out.Booking.LockedSide = &side
	}
	for _, l := range v.Layers {
		out.Layers = append(out.Layers, LayerOptionResponse{
			Name:       l.Name,
			Stage:      l.Stage,
			Selected:   l.Selected,
			Selectable: l.Selectable,
			Locked:     l.Locked,
		})
	}
	for _, c := range v.Checks {
		out.Checks = append(out.Checks, CheckOptionResponse{
			Name:     c.Name,
			Types:    c.Types,
			Selected: c.Selected,
		})
	}
	return out
}
