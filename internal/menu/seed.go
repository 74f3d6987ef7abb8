package menu

// DefaultItems is the catalog installed on first run, before the admin
// has saved anything. Prices are in yen.
func DefaultItems() []Item {
	return []Item{
		{
			ID:                    "1",
			Name:                  "Drip Coffee",
			Description:           "Classic brewed coffee",
			Prices:                Prices{S: 300, M: 350, L: 400},
			Category:              CategoryDrink,
			Image:                 "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?q=80&w=800&auto=format&fit=crop",
			AvailableTemperatures: []Temperature{TemperatureHot},
		},
		{
			ID:                    "2",
			Name:                  "Latte",
			Description:           "Espresso with steamed milk",
			Prices:                Prices{S: 400, M: 450, L: 500},
			Category:              CategoryDrink,
			Image:                 "https://images.unsplash.com/photo-1509042239860-f550ce710b93?q=80&w=800&auto=format&fit=crop",
			AvailableTemperatures: []Temperature{TemperatureHot, TemperatureIce},
		},
		{
			ID:                    "3",
			Name:                  "Cold Brew",
			Description:           "Slow-steeped cool coffee",
			Prices:                Prices{S: 350, M: 400, L: 450},
			Category:              CategoryDrink,
			Image:                 "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?q=80&w=800&auto=format&fit=crop",
			AvailableTemperatures: []Temperature{TemperatureIce},
		},
		{
			ID:                    "4",
			Name:                  "Cappuccino",
			Description:           "Espresso with foamed milk",
			Prices:                Prices{S: 400, M: 450, L: 500},
			Category:              CategoryDrink,
			Image:                 "https://images.unsplash.com/photo-1572442388796-11668a67e53d?q=80&w=800&auto=format&fit=crop",
			AvailableTemperatures: []Temperature{TemperatureHot},
		},
		{
			ID:                    "5",
			Name:                  "Matcha Latte",
			Description:           "Green tea with milk",
			Prices:                Prices{S: 450, M: 500, L: 550},
			Category:              CategoryDrink,
			Image:                 "https://images.unsplash.com/photo-1536256263959-770b48d82b0a?q=80&w=800&auto=format&fit=crop",
			AvailableTemperatures: []Temperature{TemperatureHot, TemperatureIce},
		},
		{
			ID:             "6",
			Name:           "Egg Sandwich",
			Description:    "Classic egg salad sandwich",
			Prices:         Prices{S: 400, M: 400, L: 400},
			Category:       CategoryFood,
			Image:          "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?q=80&w=800&auto=format&fit=crop",
			AvailableSizes: []Size{SizeM},
		},
		{
			ID:             "7",
			Name:           "BLT Sandwich",
			Description:    "Bacon, lettuce, and tomato",
			Prices:         Prices{S: 500, M: 500, L: 600},
			Category:       CategoryFood,
			Image:          "https://images.unsplash.com/photo-1554433607-66b5efe9d304?q=80&w=800&auto=format&fit=crop",
			AvailableSizes: []Size{SizeM, SizeL},
		},
		{
			ID:             "8",
			Name:           "Croissant",
			Description:    "Buttery French croissant",
			Prices:         Prices{S: 350, M: 350, L: 350},
			Category:       CategoryFood,
			Image:          "https://images.unsplash.com/photo-1555507036-ab1f4038808a?q=80&w=800&auto=format&fit=crop",
			AvailableSizes: []Size{SizeM},
		},
		{
			ID:             "9",
			Name:           "Meat Sauce Pasta",
			Description:    "Rich meat sauce pasta",
			Prices:         Prices{S: 800, M: 800, L: 1000},
			Category:       CategoryFood,
			Image:          "https://images.unsplash.com/photo-1551183053-bf91a1d81141?q=80&w=800&auto=format&fit=crop",
			AvailableSizes: []Size{SizeM, SizeL},
		},
		{
			ID:                    "10",
			Name:                  "Chocolate Cake",
			Description:           "Rich chocolate cake",
			Prices:                Prices{S: 450, M: 450, L: 450},
			Category:              CategoryDessert,
			Image:                 "https://images.unsplash.com/photo-1578985545062-69928b1d9587?q=80&w=800&auto=format&fit=crop",
			AvailableTemperatures: []Temperature{TemperatureIce},
			AvailableSizes:        []Size{SizeM},
		},
		{
			ID:                    "11",
			Name:                  "Vanilla Ice Cream",
			Description:           "Rich vanilla ice cream",
			Prices:                Prices{S: 300, M: 300, L: 300},
			Category:              CategoryDessert,
			Image:                 "https://images.unsplash.com/photo-1570197788417-0e82375c9371?q=80&w=800&auto=format&fit=crop",
			AvailableTemperatures: []Temperature{TemperatureIce},
			AvailableSizes:        []Size{SizeM},
		},
	}
}
