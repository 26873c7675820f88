package model

type SelectionDTO struct {
	CityName   string `json:"cityName"`
	CountyName string `json:"countyName"`
}
