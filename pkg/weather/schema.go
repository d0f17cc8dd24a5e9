package weather

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Points is the forecast grid metadata for a coordinate
type Points struct {
	GridId string `json:"gridId"`
	GridX  int    `json:"gridX"`
	GridY  int    `json:"gridY"`
}

// ForecastPeriod is one named period within a forecast (e.g. "Tonight")
type ForecastPeriod struct {
	Name             string `json:"name"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
}

// Station is an observation station
type Station struct {
	StationIdentifier string `json:"stationIdentifier"`
	Name              string `json:"name"`
}

// Observation is a current conditions report from a station
type Observation struct {
	Timestamp        string       `json:"timestamp"`
	TextDescription  string       `json:"textDescription"`
	Temperature      Measurement `json:"temperature"`
	WindSpeed        Measurement `json:"windSpeed"`
	WindDirection    Measurement `json:"windDirection"`
	RelativeHumidity Measurement `json:"relativeHumidity"`
}

// Measurement is a unit-qualified value which may be null
type Measurement struct {
	Value    *float64 `json:"value"`
	UnitCode string   `json:"unitCode"`
}

// Alert is an active weather alert
type Alert struct {
	Event       string `json:"event"`
	Severity    string `json:"severity"`
	Urgency     string `json:"urgency"`
	AreaDesc    string `json:"areaDesc"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

///////////////////////////////////////////////////////////////////////////////
// RESPONSES

type pointsResponse struct {
	Properties Points `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

type stationsResponse struct {
	Features []struct {
		Properties Station `json:"properties"`
	} `json:"features"`
}

type observationResponse struct {
	Properties Observation `json:"properties"`
}

type alertsResponse struct {
	Features []struct {
		Properties Alert `json:"properties"`
	} `json:"features"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p ForecastPeriod) String() string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
