package entity

// Branch is a physical outlet of a merchant store, located in a city district.
type Branch struct {
	ID          int
	Name        string
	ManagerName string
	PhoneNumber string
	Address     string
	Latitude    float64 // Degrees, [-90, 90].
	Longitude   float64 // Degrees, [-180, 180].
	CityID      int
	DistrictID  int
	StoreID     int
	IsPublish   bool
}

func (b *Branch) EntityID() int      { return b.ID }
func (b *Branch) SetEntityID(id int) { b.ID = id }
