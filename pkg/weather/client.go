/*
weather implements an API client for the National Weather Service forecast API
https://www.weather.gov/documentation/services-web-api
*/
package weather

import (
	"context"
	"fmt"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint  = "https://api.weather.gov"
	userAgent = "weather-app/1.0"

	// One attempt per call, bounded: the NWS API occasionally hangs and the
	// agent loop must never block indefinitely on a tool
	requestTimeout = 10 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client
func New(opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptUserAgent(userAgent),
		client.OptTimeout(requestTimeout),
		client.OptHeader("Accept", "application/geo+json"),
	}, opts...)
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: c,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Points returns the forecast grid metadata for a coordinate
func (c *Client) Points(ctx context.Context, latitude, longitude float64) (*Points, error) {
	var response pointsResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("points", fmt.Sprintf("%.4f,%.4f", latitude, longitude))); err != nil {
		return nil, err
	}
	return &response.Properties, nil
}

// Forecast returns the periodic forecast for a grid
func (c *Client) Forecast(ctx context.Context, grid *Points) ([]ForecastPeriod, error) {
	var response forecastResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("gridpoints", grid.GridId, fmt.Sprintf("%d,%d", grid.GridX, grid.GridY), "forecast")); err != nil {
		return nil, err
	}
	return response.Properties.Periods, nil
}

// Stations returns the observation stations for a grid
func (c *Client) Stations(ctx context.Context, grid *Points) ([]Station, error) {
	var response stationsResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("gridpoints", grid.GridId, fmt.Sprintf("%d,%d", grid.GridX, grid.GridY), "stations")); err != nil {
		return nil, err
	}
	stations := make([]Station, 0, len(response.Features))
	for _, feature := range response.Features {
		stations = append(stations, feature.Properties)
	}
	return stations, nil
}

// LatestObservation returns the most recent observation from a station
func (c *Client) LatestObservation(ctx context.Context, stationId string) (*Observation, error) {
	var response observationResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("stations", stationId, "observations", "latest")); err != nil {
		return nil, err
	}
	return &response.Properties, nil
}

// Alerts returns the active alerts for a coordinate
func (c *Client) Alerts(ctx context.Context, latitude, longitude float64) ([]Alert, error) {
	var response alertsResponse
	if err := c.DoWithContext(ctx, nil, &response,
		client.OptPath("alerts", "active"),
		client.OptQuery(map[string][]string{"point": {fmt.Sprintf("%.4f,%.4f", latitude, longitude)}}),
	); err != nil {
		return nil, err
	}
	alerts := make([]Alert, 0, len(response.Features))
	for _, feature := range response.Features {
		alerts = append(alerts, feature.Properties)
	}
	return alerts, nil
}
