package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// PizzaView is the public projection of a Pizza
type PizzaView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// View projects the pizza to its public fields
func (p Pizza) View() PizzaView {
	return PizzaView{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}

// PizzaViews projects a slice of pizzas, always returning a non-nil slice
func PizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, p.View())
	}
	return views
}
