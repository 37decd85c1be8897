package engine

import (
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per system to eliminate runtime map lookup
type ComponentStore struct {
	Drone *Store[component.DroneComponent]
	Wreck *Store[component.WreckComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Drone: NewStore[component.DroneComponent](),
		Wreck: NewStore[component.WreckComponent](),
	}
}

// clearAll removes every component from every store
func (c *ComponentStore) clearAll() {
	c.Drone.ClearAllComponents()
	c.Wreck.ClearAllComponents()
}

// removeEntity removes an entity from every store
func (c *ComponentStore) removeEntity(e core.Entity) {
	c.Drone.RemoveEntity(e)
	c.Wreck.RemoveEntity(e)
}
