package models

// RouteRequest asks for the shortest walk between two campus locations.
// WalkingSpeed is in m/s; when omitted the default walking pace is used.
type RouteRequest struct {
	Origin       string   `json:"origin" binding:"required"`
	Destination  string   `json:"destination" binding:"required"`
	WalkingSpeed *float64 `json:"walking_speed_ms,omitempty" binding:"omitempty,gt=0,lte=10"`
}
