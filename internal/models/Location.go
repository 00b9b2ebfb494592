package models

type Location struct {
	Name      string  `json:"name" example:"Tokyo"`
	Latitude  float64 `json:"latitude" example:"35.6895"`
	Longitude float64 `json:"longitude" example:"139.6917"`
}

// prefecturalCapitals lists the capital of each of Japan's 47 prefectures, north to south.
var prefecturalCapitals = [...]Location{
	{Name: "Sapporo", Latitude: 43.0621, Longitude: 141.3544},
	{Name: "Aomori", Latitude: 40.8244, Longitude: 140.7400},
	{Name: "Morioka", Latitude: 39.7020, Longitude: 141.1545},
	{Name: "Sendai", Latitude: 38.2682, Longitude: 140.8694},
	{Name: "Akita", Latitude: 39.7186, Longitude: 140.1024},
	{Name: "Yamagata", Latitude: 38.2554, Longitude: 140.3396},
	{Name: "Fukushima", Latitude: 37.7608, Longitude: 140.4748},
	{Name: "Mito", Latitude: 36.3659, Longitude: 140.4715},
	{Name: "Utsunomiya", Latitude: 36.5551, Longitude: 139.8828},
	{Name: "Maebashi", Latitude: 36.3895, Longitude: 139.0634},
	{Name: "Saitama", Latitude: 35.8617, Longitude: 139.6455},
	{Name: "Chiba", Latitude: 35.6074, Longitude: 140.1065},
	{Name: "Tokyo", Latitude: 35.6895, Longitude: 139.6917},
	{Name: "Yokohama", Latitude: 35.4437, Longitude: 139.6380},
	{Name: "Niigata", Latitude: 37.9022, Longitude: 139.0236},
	{Name: "Toyama", Latitude: 36.6959, Longitude: 137.2137},
	{Name: "Kanazawa", Latitude: 36.5613, Longitude: 136.6562},
	{Name: "Fukui", Latitude: 36.0641, Longitude: 136.2196},
	{Name: "Kofu", Latitude: 35.6644, Longitude: 138.5683},
	{Name: "Nagano", Latitude: 36.6486, Longitude: 138.1948},
	{Name: "Gifu", Latitude: 35.4233, Longitude: 136.7607},
	{Name: "Shizuoka", Latitude: 34.9756, Longitude: 138.3828},
	{Name: "Nagoya", Latitude: 35.1815, Longitude: 136.9066},
	{Name: "Tsu", Latitude: 34.7186, Longitude: 136.5057},
	{Name: "Otsu", Latitude: 35.0179, Longitude: 135.8540},
	{Name: "Kyoto", Latitude: 35.0116, Longitude: 135.7681},
	{Name: "Osaka", Latitude: 34.6937, Longitude: 135.5023},
	{Name: "Kobe", Latitude: 34.6901, Longitude: 135.1955},
	{Name: "Nara", Latitude: 34.6851, Longitude: 135.8048},
	{Name: "Wakayama", Latitude: 34.2304, Longitude: 135.1707},
	{Name: "Tottori", Latitude: 35.5011, Longitude: 134.2351},
	{Name: "Matsue", Latitude: 35.4681, Longitude: 133.0488},
	{Name: "Okayama", Latitude: 34.6555, Longitude: 133.9198},
	{Name: "Hiroshima", Latitude: 34.3853, Longitude: 132.4553},
	{Name: "Yamaguchi", Latitude: 34.1783, Longitude: 131.4737},
	{Name: "Tokushima", Latitude: 34.0702, Longitude: 134.5548},
	{Name: "Takamatsu", Latitude: 34.3428, Longitude: 134.0466},
	{Name: "Matsuyama", Latitude: 33.8392, Longitude: 132.7656},
	{Name: "Kochi", Latitude: 33.5588, Longitude: 133.5312},
	{Name: "Fukuoka", Latitude: 33.5904, Longitude: 130.4017},
	{Name: "Saga", Latitude: 33.2494, Longitude: 130.2974},
	{Name: "Nagasaki", Latitude: 32.7450, Longitude: 129.8739},
	{Name: "Kumamoto", Latitude: 32.7900, Longitude: 130.7420},
	{Name: "Oita", Latitude: 33.2381, Longitude: 131.6119},
	{Name: "Miyazaki", Latitude: 31.9110, Longitude: 131.4240},
	{Name: "Kagoshima", Latitude: 31.5600, Longitude: 130.5580},
	{Name: "Naha", Latitude: 26.2124, Longitude: 127.6809},
}

// PrefecturalCapitals returns a copy of the fixed location table in its canonical order.
func PrefecturalCapitals() []Location {
	locations := make([]Location, len(prefecturalCapitals))
	copy(locations, prefecturalCapitals[:])
	return locations
}
