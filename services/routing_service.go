package services

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/Kacper0199/AGH-Navigator-App/campusmap"
	"github.com/Kacper0199/AGH-Navigator-App/models"
	"github.com/Kacper0199/AGH-Navigator-App/pathengine"
)

// DefaultWalkingSpeedMS is a regular walking pace; the request can override
// it, e.g. 1.5 for a slow walk or 3.0 for a brisk one.
const DefaultWalkingSpeedMS = 2.0

// RoutingService answers route queries against the loaded campus map.
type RoutingService struct {
	campus *campusmap.Map
	logger *zap.Logger
}

func NewRoutingService(campus *campusmap.Map, logger *zap.Logger) *RoutingService {
	return &RoutingService{
		campus: campus,
		logger: logger,
	}
}

// FindRoute computes the shortest walk for the request. An unreachable
// destination is a normal answer (Reachable=false); an unknown origin or
// destination surfaces as *pathengine.NotFoundError.
func (rs *RoutingService) FindRoute(ctx context.Context, req models.RouteRequest) (models.RouteResponse, error) {
	speed := DefaultWalkingSpeedMS
	if req.WalkingSpeed != nil {
		speed = *req.WalkingSpeed
	}

	result, err := rs.campus.Graph().ShortestPath(req.Origin, req.Destination)
	if err != nil {
		return models.RouteResponse{}, err
	}

	if !result.Reachable() {
		rs.logger.Info("no route between locations",
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination))

		return models.RouteResponse{Reachable: false}, nil
	}

	stops := make([]models.Location, 0, len(result.Path))
	for _, id := range result.Path {
		loc, _ := rs.campus.Graph().Location(id)
		stops = append(stops, toModelLocation(loc))
	}

	route := models.Route{
		Origin:          stops[0],
		Destination:     stops[len(stops)-1],
		Stops:           stops,
		DistanceMeters:  int(math.Ceil(result.Distance)),
		WalkTimeMinutes: int(math.Ceil(result.Distance / (60 * speed))),
	}

	rs.logger.Info("route computed",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.Int("distance_meters", route.DistanceMeters),
		zap.Int("stops", len(route.Stops)))

	return models.RouteResponse{Reachable: true, Route: &route}, nil
}

// ListLocations returns the selectable buildings, sorted by ID. Routing
// waypoints are not included.
func (rs *RoutingService) ListLocations() []models.Location {
	buildings := rs.campus.Buildings()
	out := make([]models.Location, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, toModelLocation(b))
	}

	return out
}

func toModelLocation(loc pathengine.Location) models.Location {
	m := models.Location{ID: loc.ID, Name: loc.Name}
	if loc.Coord != nil {
		m.Latitude = loc.Coord.Lat
		m.Longitude = loc.Coord.Lon
	}

	return m
}
