package usecase

// CreateCityInput defines the payload for creating a city.
type CreateCityInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CityOutput is the full city representation. It doubles as the update
// payload; the embedded id must match the path id.
type CityOutput struct {
	ID   int    `json:"id" validate:"omitempty,gte=0"`
	Name string `json:"name" validate:"required,max=100"`
}

// CityUsecase exposes city CRUD operations to the delivery layer.
type CityUsecase = CRUDUsecase[CreateCityInput, CityOutput]

// ResourceID returns the id embedded in an update payload.
func (d CityOutput) ResourceID() int { return d.ID }
