package openweather

import (
	"encoding/json"
	"fmt"

	"github.com/couchcryptid/wxterm/internal/domain"
)

func parseCurrent(body []byte) (domain.CurrentConditions, error) {
	var resp weatherResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.CurrentConditions{}, &ParseError{Field: "body", Err: err}
	}

	switch {
	case resp.Name == "":
		return domain.CurrentConditions{}, &ParseError{Field: "name"}
	case resp.Sys.Country == "":
		return domain.CurrentConditions{}, &ParseError{Field: "sys.country"}
	case resp.Main.Temp == nil:
		return domain.CurrentConditions{}, &ParseError{Field: "main.temp"}
	case resp.Main.FeelsLike == nil:
		return domain.CurrentConditions{}, &ParseError{Field: "main.feels_like"}
	case resp.Main.Humidity == nil:
		return domain.CurrentConditions{}, &ParseError{Field: "main.humidity"}
	case resp.Main.Pressure == nil:
		return domain.CurrentConditions{}, &ParseError{Field: "main.pressure"}
	case resp.Wind.Speed == nil:
		return domain.CurrentConditions{}, &ParseError{Field: "wind.speed"}
	case len(resp.Weather) == 0:
		return domain.CurrentConditions{}, &ParseError{Field: "weather[0]"}
	case resp.Weather[0].Description == "":
		return domain.CurrentConditions{}, &ParseError{Field: "weather[0].description"}
	case resp.Weather[0].Icon == "":
		return domain.CurrentConditions{}, &ParseError{Field: "weather[0].icon"}
	}

	return domain.NormalizeCurrent(domain.CurrentConditions{
		City:        resp.Name,
		Country:     resp.Sys.Country,
		Temperature: *resp.Main.Temp,
		FeelsLike:   *resp.Main.FeelsLike,
		Humidity:    *resp.Main.Humidity,
		Description: resp.Weather[0].Description,
		Icon:        resp.Weather[0].Icon,
		WindSpeed:   *resp.Wind.Speed,
		Pressure:    *resp.Main.Pressure,
	}), nil
}

func parseForecast(body []byte) (domain.Forecast, error) {
	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Forecast{}, &ParseError{Field: "body", Err: err}
	}

	switch {
	case resp.City.Name == "":
		return domain.Forecast{}, &ParseError{Field: "city.name"}
	case resp.City.Country == "":
		return domain.Forecast{}, &ParseError{Field: "city.country"}
	case len(resp.List) == 0:
		return domain.Forecast{}, &ParseError{Field: "list"}
	}

	samples := make([]domain.Sample, len(resp.List))
	for i, item := range resp.List {
		switch {
		case item.DtTxt == "":
			return domain.Forecast{}, &ParseError{Field: fmt.Sprintf("list[%d].dt_txt", i)}
		case item.Main.Temp == nil:
			return domain.Forecast{}, &ParseError{Field: fmt.Sprintf("list[%d].main.temp", i)}
		case len(item.Weather) == 0:
			return domain.Forecast{}, &ParseError{Field: fmt.Sprintf("list[%d].weather[0]", i)}
		case item.Weather[0].Description == "":
			return domain.Forecast{}, &ParseError{Field: fmt.Sprintf("list[%d].weather[0].description", i)}
		case item.Weather[0].Icon == "":
			return domain.Forecast{}, &ParseError{Field: fmt.Sprintf("list[%d].weather[0].icon", i)}
		}

		samples[i] = domain.Sample{
			Timestamp:   item.DtTxt,
			Temperature: *item.Main.Temp,
			Description: item.Weather[0].Description,
			Icon:        item.Weather[0].Icon,
		}
	}

	return domain.BuildForecast(resp.City.Name, resp.City.Country, samples), nil
}

// OpenWeatherMap response types. Required numeric leaves decode into pointers
// so a missing field is distinguishable from a legitimate zero.

type weatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main mainBlock `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []conditionBlock `json:"weather"`
}

type mainBlock struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *int     `json:"humidity"`
	Pressure  *int     `json:"pressure"`
}

type conditionBlock struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type forecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []conditionBlock `json:"weather"`
}
