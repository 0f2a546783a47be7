package request_models

type CreateBuildingRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=200"`
	Address      string  `json:"address" validate:"required,min=5,max=300"`
	City         string  `json:"city" validate:"omitempty,min=2,max=100"`
	ZipCode      string  `json:"zipCode" validate:"required,zipcode"`
	Neighborhood *string `json:"neighborhood" validate:"omitempty,neighborhood"`
	BuildingType *string `json:"buildingType" validate:"omitempty,buildingtype"`
	LandlordName *string `json:"landlordName" validate:"omitempty,max=200"`
}

// ListBuildingsQuery carries the raw listing parameters; Limit and Offset stay
// strings until the listing engine parses them so bad input can be rejected.
type ListBuildingsQuery struct {
	Q            string
	Neighborhood string
	BuildingType string
	SortBy       string
	Limit        string
	Offset       string
	Status       string
}
