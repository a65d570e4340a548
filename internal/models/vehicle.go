package models

import "strconv"

type VehicleType string

const (
	VehicleTypeSedan     VehicleType = "sedan"
	VehicleTypeSUV       VehicleType = "suv"
	VehicleTypeHatchback VehicleType = "hatchback"
	VehicleTypeMinivan   VehicleType = "minivan"
)

type Vehicle struct {
	ID           string      `json:"id" bson:"_id"`
	Make         string      `json:"make" bson:"make" validate:"required"`
	Model        string      `json:"model" bson:"model" validate:"required"`
	Year         int         `json:"year" bson:"year" validate:"required,min=1990"`
	Color        string      `json:"color" bson:"color"`
	LicensePlate string      `json:"license_plate" bson:"license_plate" validate:"required"`
	Capacity     int         `json:"capacity" bson:"capacity" validate:"min=1,max=8"`
	Type         VehicleType `json:"type" bson:"type"`
}

// Describe renders "2022 Toyota Camry (Silver)".
func (v Vehicle) Describe() string {
	desc := v.Make + " " + v.Model
	if v.Year > 0 {
		desc = strconv.Itoa(v.Year) + " " + desc
	}
	if v.Color != "" {
		desc += " (" + v.Color + ")"
	}
	return desc
}
