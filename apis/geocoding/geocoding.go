package geocoding

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/eskendarov/weather-app/manager"
)

func New(baseURL string, count int) *geocoding {
	return &geocoding{
		baseURL: baseURL,
		count:   count,
	}
}

type geocoding struct {
	baseURL string
	count   int
}

// Search returns candidates for a partial city name in API response order.
// An absent or empty results field means no matches, not an error.
func (g *geocoding) Search(ctx context.Context, query string) ([]manager.Candidate, error) {
	params := map[string]string{
		"name":  query,
		"count": strconv.Itoa(g.count),
	}

	body, err := processRequest(ctx, g.baseURL, params)
	if err != nil {
		return nil, err
	}

	type responseStruct struct {
		Results []struct {
			ID        int64   `json:"id"`
			Name      string  `json:"name"`
			Admin1    string  `json:"admin1"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}

	var response responseStruct
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	candidates := make([]manager.Candidate, 0, len(response.Results))
	for _, result := range response.Results {
		candidates = append(candidates, manager.Candidate{
			ID:        manager.CandidateID(strconv.FormatInt(result.ID, 10)),
			CityName:  result.Name,
			Region:    result.Admin1,
			Latitude:  result.Latitude,
			Longitude: result.Longitude,
		})
	}

	return candidates, nil
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
