package models

// Restaurant represents a restaurant and the pizzas it offers
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// RestaurantView is the public projection of a Restaurant without its menu
type RestaurantView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetailView is a restaurant together with every pizza it offers
type RestaurantDetailView struct {
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	Address          string                `json:"address"`
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// View projects the restaurant to its public fields
func (r Restaurant) View() RestaurantView {
	return RestaurantView{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// DetailView expects RestaurantPizzas and their Pizza to be preloaded
func (r Restaurant) DetailView() RestaurantDetailView {
	items := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		items = append(items, rp.View())
	}
	return RestaurantDetailView{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: items,
	}
}

// RestaurantViews projects a slice of restaurants, always returning a non-nil slice
func RestaurantViews(restaurants []Restaurant) []RestaurantView {
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, r.View())
	}
	return views
}
