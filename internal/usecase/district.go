package usecase

// CreateDistrictInput defines the payload for creating a district.
type CreateDistrictInput struct {
	Name   string `json:"name" validate:"required,max=100"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
	CityID int    `json:"cityId" validate:"required,gt=0"`
}

// DistrictOutput is the full district representation.
type DistrictOutput struct {
	ID     int    `json:"id" validate:"omitempty,gte=0"`
	Name   string `json:"name" validate:"required,max=100"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
	CityID int    `json:"cityId" validate:"required,gt=0"`
}

// DistrictUsecase exposes district CRUD operations to the delivery layer.
type DistrictUsecase = CRUDUsecase[CreateDistrictInput, DistrictOutput]

// ResourceID returns the id embedded in an update payload.
func (d DistrictOutput) ResourceID() int { return d.ID }
