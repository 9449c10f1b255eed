package domain

// Car is a catalog entry. The booking subsystem treats cars as read-only
// reference data owned by the catalog.
type Car struct {
	ID             int32   `json:"id"`
	Make           string  `json:"make"`
	Model          string  `json:"model"`
	Year           int32   `json:"year"`
	Class          string  `json:"class"`
	FuelType       string  `json:"fuel_type"`
	Drive          string  `json:"drive"`
	Transmission   string  `json:"transmission"`
	Cylinders      int32   `json:"cylinders"`
	Displacement   float64 `json:"displacement"`
	CityMPG        int32   `json:"city_mpg"`
	HighwayMPG     int32   `json:"highway_mpg"`
	CombinationMPG int32   `json:"combination_mpg"`
	ImgPath        string  `json:"img_path"`
	CarLocation    string  `json:"car_location"`
}
