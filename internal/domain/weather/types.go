package weather

// weatherapi.com response shapes (subset used by the advisory surface).

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type locationInfo struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type conditionInfo struct {
	Text string `json:"text"`
}

type airQualityInfo struct {
	CO   float64 `json:"co"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
}

type currentInfo struct {
	TempC       float64         `json:"temp_c"`
	FeelslikeC  float64         `json:"feelslike_c"`
	Condition   conditionInfo   `json:"condition"`
	Humidity    float64         `json:"humidity"`
	WindKph     float64         `json:"wind_kph"`
	WindDir     string          `json:"wind_dir"`
	PressureMb  float64         `json:"pressure_mb"`
	VisKm       float64         `json:"vis_km"`
	UV          float64         `json:"uv"`
	LastUpdated string          `json:"last_updated"`
	AirQuality  *airQualityInfo `json:"air_quality"`
}

type currentResponse struct {
	Location locationInfo `json:"location"`
	Current  currentInfo  `json:"current"`
	Error    *apiError    `json:"error"`
}

type dayInfo struct {
	MaxtempC          float64       `json:"maxtemp_c"`
	MintempC          float64       `json:"mintemp_c"`
	Condition         conditionInfo `json:"condition"`
	DailyChanceOfRain int           `json:"daily_chance_of_rain"`
	Avghumidity       float64       `json:"avghumidity"`
	MaxwindKph        float64       `json:"maxwind_kph"`
}

type forecastDayInfo struct {
	Date string  `json:"date"`
	Day  dayInfo `json:"day"`
}

type forecastResponse struct {
	Forecast struct {
		Forecastday []forecastDayInfo `json:"forecastday"`
	} `json:"forecast"`
	Error *apiError `json:"error"`
}

// Reshaped advisory output.

type AirQuality struct {
	CO   float64 `json:"co"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
}

type CurrentWeather struct {
	Temperature float64     `json:"temperature"`
	FeelsLike   float64     `json:"feels_like"`
	Condition   string      `json:"condition"`
	Humidity    float64     `json:"humidity"`
	WindKph     float64     `json:"wind_kph"`
	WindDir     string      `json:"wind_dir"`
	Pressure    float64     `json:"pressure"`
	Visibility  float64     `json:"visibility"`
	UVIndex     float64     `json:"uv_index"`
	LastUpdated string      `json:"last_updated"`
	AirQuality  *AirQuality `json:"air_quality,omitempty"`
}

type ForecastDay struct {
	Date       string  `json:"date"`
	MaxTemp    float64 `json:"max_temp"`
	MinTemp    float64 `json:"min_temp"`
	Condition  string  `json:"condition"`
	RainChance int     `json:"rain_chance"`
	Humidity   float64 `json:"humidity"`
	WindKph    float64 `json:"wind_kph"`
}

// Report is the full response body for a weather request.
type Report struct {
	LocationName   string         `json:"location_name"`
	CurrentWeather CurrentWeather `json:"current_weather"`
	Forecast       []ForecastDay  `json:"forecast"`
	Alerts         []string       `json:"alerts"`
	Success        bool           `json:"success"`
}
