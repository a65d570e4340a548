package models

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude" validate:"longitude"`
	Address   string  `json:"address" bson:"address"`
	City      string  `json:"city" bson:"city"`
	State     string  `json:"state" bson:"state"`
}

type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
	Country string `json:"country" bson:"country"`
}

type EmergencyContact struct {
	Name         string `json:"name" bson:"name"`
	Phone        string `json:"phone" bson:"phone"`
	Relationship string `json:"relationship" bson:"relationship"`
}

// String renders the location as "address, city".
func (l Location) String() string {
	if l.City == "" {
		return l.Address
	}
	if l.Address == "" {
		return l.City
	}
	return l.Address + ", " + l.City
}
