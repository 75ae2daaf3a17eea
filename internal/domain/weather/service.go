package weather

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

// Service fetches current conditions and the forecast, reshapes them and
// derives the advisory alerts.
type Service struct {
	client *Client
	logger *logging.Logger
}

func NewService(client *Client, logger *logging.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// GetWeather builds the full advisory weather report for a location. The
// two provider calls run concurrently; either failing fails the request.
func (s *Service) GetWeather(ctx context.Context, location string) (*Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New(errors.KindInvalidInput, "weather.get", "Location needed")
	}

	var (
		current  *currentResponse
		forecast *forecastResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.client.Current(gctx, location)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = s.client.Forecast(gctx, location)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WarnTag("WEATHER", "provider request failed: %v", err)
		return nil, errors.Wrap(errors.KindWeatherService, "weather.get",
			fmt.Sprintf("Weather service error: %v", err), err)
	}

	// An error field in either body fails the request without surfacing
	// the provider's own detail; it is only logged.
	if current.Error != nil || forecast.Error != nil {
		if current.Error != nil {
			s.logger.WarnTag("WEATHER", "provider error (current): code=%d %s",
				current.Error.Code, current.Error.Message)
		}
		if forecast.Error != nil {
			s.logger.WarnTag("WEATHER", "provider error (forecast): code=%d %s",
				forecast.Error.Code, forecast.Error.Message)
		}
		return nil, errors.New(errors.KindWeatherService, "weather.get", "Cannot get weather data")
	}

	place := fmt.Sprintf("%s, %s, %s",
		current.Location.Name, current.Location.Region, current.Location.Country)

	currentWeather := reshapeCurrent(current.Current)

	forecastDays := make([]ForecastDay, 0, len(forecast.Forecast.Forecastday))
	for _, day := range forecast.Forecast.Forecastday {
		forecastDays = append(forecastDays, ForecastDay{
			Date:       day.Date,
			MaxTemp:    day.Day.MaxtempC,
			MinTemp:    day.Day.MintempC,
			Condition:  day.Day.Condition.Text,
			RainChance: day.Day.DailyChanceOfRain,
			Humidity:   day.Day.Avghumidity,
			WindKph:    day.Day.MaxwindKph,
		})
	}

	return &Report{
		LocationName:   place,
		CurrentWeather: currentWeather,
		Forecast:       forecastDays,
		Alerts:         BuildAlerts(currentWeather, forecastDays),
		Success:        true,
	}, nil
}

func reshapeCurrent(current currentInfo) CurrentWeather {
	weather := CurrentWeather{
		Temperature: current.TempC,
		FeelsLike:   current.FeelslikeC,
		Condition:   current.Condition.Text,
		Humidity:    current.Humidity,
		WindKph:     current.WindKph,
		WindDir:     current.WindDir,
		Pressure:    current.PressureMb,
		Visibility:  current.VisKm,
		UVIndex:     current.UV,
		LastUpdated: current.LastUpdated,
	}
	if weather.WindDir == "" {
		weather.WindDir = "N/A"
	}
	if current.AirQuality != nil {
		weather.AirQuality = &AirQuality{
			CO:   current.AirQuality.CO,
			PM25: current.AirQuality.PM25,
			PM10: current.AirQuality.PM10,
		}
	}
	return weather
}
