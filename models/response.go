package models

// ApiResponse is the envelope every endpoint replies with.
type ApiResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ApiError   `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
}

type ApiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Route is a computed walk between two buildings. Stops carries the full
// ordered point sequence (waypoints included) with coordinates so the
// caller can draw the route as a polyline.
type Route struct {
	Origin          Location   `json:"origin"`
	Destination     Location   `json:"destination"`
	Stops           []Location `json:"stops"`
	DistanceMeters  int        `json:"distance_meters"`
	WalkTimeMinutes int        `json:"walk_time_minutes"`
}

// RouteResponse wraps a route lookup. Reachable is false when no path
// connects the two locations; Route is omitted in that case.
type RouteResponse struct {
	Reachable bool   `json:"reachable"`
	Route     *Route `json:"route,omitempty"`
}

type LocationsResponse struct {
	Locations []Location `json:"locations"`
	Count     int        `json:"count"`
}
