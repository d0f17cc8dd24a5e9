package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	mcpagent "github.com/mcp-demos/go-mcpagent"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ForecastRequest is the input for the coordinate-based weather tools
type ForecastRequest struct {
	Latitude     float64 `json:"latitude" jsonschema:"Latitude of the location"`
	Longitude    float64 `json:"longitude" jsonschema:"Longitude of the location"`
	LocationName string  `json:"location_name,omitempty" jsonschema:"Human-readable name for the location"`
}

// CityRequest is the input for the city weather tool
type CityRequest struct {
	CityName string `json:"city_name" jsonschema:"Name of a major US city"`
}

type forecastWeather struct {
	client *Client
}

type currentConditions struct {
	client *Client
}

type alertsWeather struct {
	client *Client
}

type cityWeather struct {
	client *Client
}

var _ tool.Tool = (*forecastWeather)(nil)
var _ tool.Tool = (*currentConditions)(nil)
var _ tool.Tool = (*alertsWeather)(nil)
var _ tool.Tool = (*cityWeather)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the set of weather tools for use with LLM agents
func NewTools(opts ...client.ClientOpt) ([]tool.Tool, error) {
	// Create a client
	client, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return []tool.Tool{
		&forecastWeather{client: client},
		&currentConditions{client: client},
		&alertsWeather{client: client},
		&cityWeather{client: client},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// FORECAST

func (*forecastWeather) Name() string {
	return "get_weather_forecast"
}

func (*forecastWeather) Description() string {
	return "Get the weather forecast for a location using latitude and longitude."
}

func (*forecastWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ForecastRequest](nil)
}

func (f *forecastWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	req, err := decodeForecastRequest(input)
	if err != nil {
		return nil, err
	}
	return forecastText(ctx, f.client, req.Latitude, req.Longitude, req.Name())
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT CONDITIONS

func (*currentConditions) Name() string {
	return "get_current_conditions"
}

func (*currentConditions) Description() string {
	return "Get the current weather conditions for a location using latitude and longitude."
}

func (*currentConditions) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ForecastRequest](nil)
}

func (c *currentConditions) Run(ctx context.Context, input json.RawMessage) (any, error) {
	req, err := decodeForecastRequest(input)
	if err != nil {
		return nil, err
	}

	grid, err := c.client.Points(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch grid data for %s: %w", req.Name(), err)
	}
	stations, err := c.client.Stations(ctx, grid)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch observation stations for %s: %w", req.Name(), err)
	}
	if len(stations) == 0 {
		return nil, mcpagent.ErrNotFound.Withf("no observation stations found for %s", req.Name())
	}
	obs, err := c.client.LatestObservation(ctx, stations[0].StationIdentifier)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch observations for %s: %w", req.Name(), err)
	}

	// Format the observation
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current Conditions for %s\n", req.Name())
	fmt.Fprintf(&sb, "Station: %s\n", stations[0].Name)
	if obs.Timestamp != "" {
		fmt.Fprintf(&sb, "Time: %s\n", obs.Timestamp)
	}
	if obs.Temperature.Value != nil {
		celsius := *obs.Temperature.Value
		fmt.Fprintf(&sb, "Temperature: %.1f°F (%.1f°C)\n", celsius*9/5+32, celsius)
	}
	if obs.TextDescription != "" {
		fmt.Fprintf(&sb, "Conditions: %s\n", obs.TextDescription)
	}
	if obs.WindSpeed.Value != nil {
		fmt.Fprintf(&sb, "Wind Speed: %.1f mph\n", *obs.WindSpeed.Value*2.237)
	}
	if obs.WindDirection.Value != nil {
		fmt.Fprintf(&sb, "Wind Direction: %.0f°\n", *obs.WindDirection.Value)
	}
	if obs.RelativeHumidity.Value != nil {
		fmt.Fprintf(&sb, "Humidity: %.1f%%\n", *obs.RelativeHumidity.Value)
	}
	return sb.String(), nil
}

///////////////////////////////////////////////////////////////////////////////
// ALERTS

func (*alertsWeather) Name() string {
	return "get_weather_alerts"
}

func (*alertsWeather) Description() string {
	return "Get active weather alerts for a location using latitude and longitude."
}

func (*alertsWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ForecastRequest](nil)
}

func (a *alertsWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	req, err := decodeForecastRequest(input)
	if err != nil {
		return nil, err
	}

	alerts, err := a.client.Alerts(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch alerts for %s: %w", req.Name(), err)
	}
	if len(alerts) == 0 {
		return fmt.Sprintf("No active weather alerts for %s", req.Name()), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Active Weather Alerts for %s\n\n", req.Name())
	for i, alert := range alerts {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&sb, "Alert: %s\n", alert.Event)
		fmt.Fprintf(&sb, "Severity: %s\n", alert.Severity)
		fmt.Fprintf(&sb, "Urgency: %s\n", alert.Urgency)
		if alert.Headline != "" {
			fmt.Fprintf(&sb, "Headline: %s\n", alert.Headline)
		}
		if alert.AreaDesc != "" {
			fmt.Fprintf(&sb, "Areas: %s\n", alert.AreaDesc)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

///////////////////////////////////////////////////////////////////////////////
// CITY WEATHER

func (*cityWeather) Name() string {
	return "get_city_weather"
}

func (*cityWeather) Description() string {
	return "Get the weather forecast for a major US city by name."
}

func (*cityWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CityRequest](nil)
}

func (c *cityWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CityRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, mcpagent.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.CityName == "" {
		return nil, mcpagent.ErrBadParameter.With("city_name is required")
	}

	// Resolve the city against the static table
	coord, err := LookupCity(req.CityName)
	if err != nil {
		return nil, err
	}

	return forecastText(ctx, c.client, coord.Latitude, coord.Longitude, titleCase(req.CityName))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Name returns the location name, or a placeholder when none was given
func (r ForecastRequest) Name() string {
	if r.LocationName != "" {
		return r.LocationName
	}
	return fmt.Sprintf("%.4f,%.4f", r.Latitude, r.Longitude)
}

func decodeForecastRequest(input json.RawMessage) (*ForecastRequest, error) {
	var req ForecastRequest
	if len(input) == 0 {
		return nil, mcpagent.ErrBadParameter.With("missing input")
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, mcpagent.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
	}
	return &req, nil
}

// forecastText fetches the forecast for a coordinate and formats the next
// few periods as readable text
func forecastText(ctx context.Context, c *Client, latitude, longitude float64, name string) (string, error) {
	grid, err := c.Points(ctx, latitude, longitude)
	if err != nil {
		return "", fmt.Errorf("unable to fetch forecast data for %s: %w", name, err)
	}
	periods, err := c.Forecast(ctx, grid)
	if err != nil {
		return "", fmt.Errorf("unable to fetch detailed forecast for %s: %w", name, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Weather Forecast for %s\n", name)
	fmt.Fprintf(&sb, "Weather Office: %s, Grid: (%d, %d)\n\n", grid.GridId, grid.GridX, grid.GridY)
	for i, period := range periods {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&sb, "%s: %d°%s\n", period.Name, period.Temperature, period.TemperatureUnit)
		fmt.Fprintf(&sb, "  Conditions: %s\n", period.ShortForecast)
		fmt.Fprintf(&sb, "  Details: %s...\n\n", truncate(period.DetailedForecast, 150))
	}
	return sb.String(), nil
}

// truncate caps a string at n runes
func truncate(value string, n int) string {
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[:n])
}

// titleCase upper-cases the first letter of each word in a city name
func titleCase(name string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
