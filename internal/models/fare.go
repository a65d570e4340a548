package models

type FareBreakdown struct {
	BaseFare     float64 `json:"base_fare" bson:"base_fare"`
	DistanceFare float64 `json:"distance_fare" bson:"distance_fare"`
	TimeFare     float64 `json:"time_fare" bson:"time_fare"`
	Surcharge    float64 `json:"surcharge,omitempty" bson:"surcharge"`
	Discount     float64 `json:"discount,omitempty" bson:"discount"`
	Total        float64 `json:"total" bson:"total"`
}
