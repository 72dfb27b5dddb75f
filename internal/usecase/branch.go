package usecase

// CreateBranchInput defines the payload for creating a branch.
type CreateBranchInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	ManagerName string  `json:"managerName" validate:"omitempty,max=100"`
	PhoneNumber string  `json:"phoneNumber" validate:"omitempty,max=30"`
	Address     string  `json:"address" validate:"omitempty,max=255"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	CityID      int     `json:"cityId" validate:"required,gt=0"`
	DistrictID  int     `json:"districtId" validate:"required,gt=0"`
	StoreID     int     `json:"storeId" validate:"required,gt=0"`
	IsPublish   bool    `json:"isPublish"`
}

// BranchOutput is the full branch representation.
type BranchOutput struct {
	ID          int     `json:"id" validate:"omitempty,gte=0"`
	Name        string  `json:"name" validate:"required,max=100"`
	ManagerName string  `json:"managerName" validate:"omitempty,max=100"`
	PhoneNumber string  `json:"phoneNumber" validate:"omitempty,max=30"`
	Address     string  `json:"address" validate:"omitempty,max=255"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	CityID      int     `json:"cityId" validate:"required,gt=0"`
	DistrictID  int     `json:"districtId" validate:"required,gt=0"`
	StoreID     int     `json:"storeId" validate:"required,gt=0"`
	IsPublish   bool    `json:"isPublish"`
}

// BranchUsecase exposes branch CRUD operations to the delivery layer.
type BranchUsecase = CRUDUsecase[CreateBranchInput, BranchOutput]

// ResourceID returns the id embedded in an update payload.
func (d BranchOutput) ResourceID() int { return d.ID }
