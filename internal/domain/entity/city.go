// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// City is a top-level reference record; districts and branches hang off it.
type City struct {
	ID   int
	Name string
}

// EntityID returns the surrogate identity of the city.
func (c *City) EntityID() int { return c.ID }

// SetEntityID sets the surrogate identity of the city.
func (c *City) SetEntityID(id int) { c.ID = id }
