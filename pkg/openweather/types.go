package openweather

import (
	"bytes"
	"strconv"
)

// Reading is a structured current weather observation. Only City is
// guaranteed; the API may omit any sub-field and absent values pass
// through as nil rather than failing the call.
type Reading struct {
	City        string
	Description *string
	Temp        *float64 // °C when units=metric
	FeelsLike   *float64
	Humidity    *int // percent
	WindSpeed   *float64 // m/s when units=metric
}

// statusCode tolerates the API quirk of reporting "cod" as a number on
// success and as a quoted string on errors (e.g. "404").
type statusCode int

func (s *statusCode) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*s = statusCode(n)
	return nil
}

// currentWeatherResponse is the raw API body.
type currentWeatherResponse struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Main    *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}
