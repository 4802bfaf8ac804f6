package openmeteo

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/eskendarov/weather-app/manager"
)

const currentFields = "temperature_2m,relative_humidity_2m,is_day,weather_code,wind_speed_10m"

func New(baseURL string) *openMeteo {
	return &openMeteo{
		baseURL: baseURL,
	}
}

type openMeteo struct {
	baseURL string
}

func (o *openMeteo) Current(ctx context.Context, latitude, longitude float64) (manager.Reading, error) {
	params := map[string]string{
		"latitude":        strconv.FormatFloat(latitude, 'f', -1, 64),
		"longitude":       strconv.FormatFloat(longitude, 'f', -1, 64),
		"current":         currentFields,
		"wind_speed_unit": "ms",
		"timezone":        "auto",
	}

	body, err := processRequest(ctx, o.baseURL, params)
	if err != nil {
		return manager.Reading{}, err
	}

	type responseStruct struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    int     `json:"relative_humidity_2m"`
			IsDay       int     `json:"is_day"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}

	var response responseStruct
	if err = json.Unmarshal(body, &response); err != nil {
		return manager.Reading{}, err
	}

	return manager.Reading{
		TempC:    response.Current.Temperature,
		IsDay:    response.Current.IsDay == 1,
		Code:     response.Current.WeatherCode,
		Humidity: response.Current.Humidity,
		WindMS:   response.Current.WindSpeed,
	}, nil
}

func processRequest(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	request := resty.New().R().SetContext(ctx)
	request.SetQueryParams(params)

	response, err := request.Get(path)
	if err != nil {
		return nil, &manager.NetworkError{Err: err}
	}

	if response.StatusCode() != 200 {
		buf := &bytes.Buffer{}
		if err = json.Indent(buf, response.Body(), "", "  "); err != nil {
			buf = bytes.NewBuffer(response.Body())
		}

		return nil, &manager.NetworkError{Status: response.StatusCode(), Body: buf.String()}
	}

	return response.Body(), nil
}
