package service

import (
	"context"
	"fmt"

	"github.com/alexivanou/weather-mcp/internal/model"
	"github.com/alexivanou/weather-mcp/internal/openmeteo"
)

const (
	geocodeCandidates = 5
	geocodeBestMatch  = 1
)

// Service provides the weather tools on top of an upstream provider
type Service struct {
	provider        openmeteo.Provider
	geocodeLanguage string
}

// NewService creates a new service instance
func NewService(provider openmeteo.Provider, geocodeLanguage string) *Service {
	return &Service{
		provider:        provider,
		geocodeLanguage: geocodeLanguage,
	}
}

// resolveCity geocodes name and returns its best match, or nil when nothing matched.
// Ambiguous names always resolve to the first candidate.
func (s *Service) resolveCity(ctx context.Context, name, language string) (*model.GeoLocation, error) {
	results, err := s.provider.Geocode(ctx, name, geocodeBestMatch, language)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve city: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	loc := results[0]
	if loc.Name == "" {
		loc.Name = name
	}
	return &loc, nil
}

func coordinateOf(loc *model.GeoLocation) model.Coordinate {
	return model.Coordinate{Lat: loc.Latitude, Lon: loc.Longitude}
}
