package model

// State represents one Indian state or union territory
type State struct {
	Code   string `bson:"code" json:"code"`
	Name   string `bson:"name" json:"name"`
	NameHi string `bson:"name_hi" json:"name_hi"`
}

// District represents one administrative district within a state
type District struct {
	ID             string   `bson:"id" json:"id"`
	DistrictCode   string   `bson:"district_code" json:"district_code"`
	DistrictName   string   `bson:"district_name" json:"district_name"`
	DistrictNameHi string   `bson:"district_name_hi" json:"district_name_hi"`
	StateCode      string   `bson:"state_code" json:"state_code"`
	StateName      string   `bson:"state_name" json:"state_name"`
	StateNameHi    string   `bson:"state_name_hi" json:"state_name_hi"`
	Latitude       *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude      *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}
