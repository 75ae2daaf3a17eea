package weather

import (
	"fmt"
	"strings"
)

// BuildAlerts derives advisory alert strings from fixed thresholds over the
// current conditions and the first forecast day. Categories are evaluated
// independently and additively; branches within a category are mutually
// exclusive, first match wins. Output order follows evaluation order.
func BuildAlerts(current CurrentWeather, forecast []ForecastDay) []string {
	alerts := []string{}

	tempC := current.Temperature
	condition := strings.ToLower(current.Condition)
	humidity := current.Humidity
	windKph := current.WindKph

	switch {
	case tempC > 40:
		alerts = append(alerts, "🔥 EXTREME HEAT: Very high temperature! Increase irrigation frequency and provide shade for crops.")
	case tempC > 35:
		alerts = append(alerts, "⚠️ HEAT WARNING: High temperature! Ensure adequate water supply for crops.")
	case tempC < 10:
		alerts = append(alerts, "❄️ FROST ALERT: Very low temperature! Protect sensitive crops from frost damage.")
	case tempC < 15:
		alerts = append(alerts, "🌡️ COLD WARNING: Low temperature! Monitor cold-sensitive crops.")
	}

	switch {
	case strings.Contains(condition, "rain") || strings.Contains(condition, "shower"):
		alerts = append(alerts, "🌧️ RAIN EXPECTED: Good for soil moisture but watch for waterlogging and fungal diseases.")
	case strings.Contains(condition, "storm") || strings.Contains(condition, "thunder"):
		alerts = append(alerts, "⛈️ STORM WARNING: Severe weather expected! Secure crops and farming equipment.")
	case strings.Contains(condition, "sunny") && tempC > 30:
		alerts = append(alerts, "☀️ HOT & SUNNY: Perfect for drying crops but ensure adequate irrigation.")
	}

	switch {
	case humidity > 85:
		alerts = append(alerts, "💧 HIGH HUMIDITY: High risk of fungal infections. Monitor crops closely and ensure good ventilation.")
	case humidity < 25:
		alerts = append(alerts, "🌵 LOW HUMIDITY: Dry conditions. Increase irrigation and consider mulching.")
	}

	switch {
	case windKph > 30:
		alerts = append(alerts, "💨 STRONG WINDS: Secure tall crops and lightweight equipment. Risk of crop damage.")
	case windKph > 20:
		alerts = append(alerts, "🌬️ MODERATE WINDS: Monitor tall crops for wind damage.")
	}

	if current.UVIndex > 8 {
		alerts = append(alerts, "🔆 HIGH UV INDEX: Protect yourself when working outdoors. Consider shade for sensitive crops.")
	}

	// Only the first forecast day feeds the outlook alerts.
	for i, day := range forecast {
		if i >= 1 {
			break
		}
		if day.RainChance > 70 {
			alerts = append(alerts, fmt.Sprintf("🌧️ RAIN FORECAST: High chance of rain in %d day(s). Plan field activities accordingly.", i+1))
		}
		if day.MaxTemp > 40 {
			alerts = append(alerts, fmt.Sprintf("🔥 HEAT FORECAST: Very hot weather expected in %d day(s). Prepare irrigation systems.", i+1))
		}
	}

	return alerts
}
