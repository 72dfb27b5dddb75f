package entity

// District is a subdivision of a City.
type District struct {
	ID     int
	Name   string
	Notes  string
	CityID int
}

func (d *District) EntityID() int      { return d.ID }
func (d *District) SetEntityID(id int) { d.ID = id }
