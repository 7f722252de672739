package domain

type seedItem struct {
	id    string
	name  string
	price float64
	stock int
}

var starterItems = []seedItem{
	{"1", "Laptop", 250000, 5},
	{"2", "Mouse", 5000, 20},
	{"3", "Keyboard", 15000, 10},
	{"4", "Monitor", 60000, 3},
}

// Seed fills the catalog with the starter set.
func Seed(s *Store) error {
	for _, si := range starterItems {
		item, err := NewItem(si.id, si.name, si.price, si.stock)
		if err != nil {
			return err
		}
		s.AddItem(item)
	}
	return nil
}
