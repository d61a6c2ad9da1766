package services

import (
	"maharaja-dine-service/models"
)

// defaultMenu returns the built-in catalog used whenever no valid persisted
// catalog exists. Ids are fixed so a reseeded install keeps stable item
// references.
func defaultMenu() []models.MenuItem {
	return []models.MenuItem{
		// Starters
		{
			ID:           "1",
			Name:         "Royal Samosa Platter",
			Description:  "Crispy golden samosas filled with spiced potatoes and served with mint chutney",
			Price:        12.99,
			Category:     models.CategoryStarter,
			Image:        "https://images.pexels.com/photos/4449068/pexels-photo-4449068.jpeg",
			Available:    true,
			SpiceLevel:   models.SpiceMedium,
			IsVegetarian: true,
		},
		{
			ID:          "2",
			Name:        "Tandoori Chicken Wings",
			Description: "Succulent chicken wings marinated in royal spices and grilled to perfection",
			Price:       16.99,
			Category:    models.CategoryStarter,
			Image:       "https://images.pexels.com/photos/2338407/pexels-photo-2338407.jpeg",
			Available:   true,
			SpiceLevel:  models.SpiceHot,
		},
		{
			ID:           "3",
			Name:         "Paneer Tikka",
			Description:  "Grilled cottage cheese cubes with bell peppers and onions",
			Price:        14.99,
			Category:     models.CategoryStarter,
			Image:        "https://images.pexels.com/photos/3928854/pexels-photo-3928854.png",
			Available:    true,
			SpiceLevel:   models.SpiceMedium,
			IsVegetarian: true,
		},
		// Main course
		{
			ID:          "4",
			Name:        "Maharaja Special Biryani",
			Description: "Aromatic basmati rice layered with tender lamb and royal spices",
			Price:       28.99,
			Category:    models.CategoryMain,
			Image:       "https://images.pexels.com/photos/17649369/pexels-photo-17649369.jpeg",
			Available:   true,
			SpiceLevel:  models.SpiceMedium,
		},
		{
			ID:          "5",
			Name:        "Butter Chicken",
			Description: "Creamy tomato-based curry with tender chicken pieces",
			Price:       24.99,
			Category:    models.CategoryMain,
			Image:       "https://images.pexels.com/photos/9609844/pexels-photo-9609844.jpeg",
			Available:   true,
			SpiceLevel:  models.SpiceMild,
		},
		{
			ID:           "6",
			Name:         "Dal Maharaja",
			Description:  "Rich lentil curry with a blend of aromatic spices",
			Price:        18.99,
			Category:     models.CategoryMain,
			Image:        "https://images.pexels.com/photos/12737916/pexels-photo-12737916.jpeg",
			Available:    true,
			SpiceLevel:   models.SpiceMild,
			IsVegetarian: true,
		},
		// Desserts
		{
			ID:           "7",
			Name:         "Royal Kulfi",
			Description:  "Traditional Indian ice cream with cardamom and pistachios",
			Price:        8.99,
			Category:     models.CategoryDessert,
			Image:        "https://imgs.search.brave.com/7YAeRRwM2-QhyfVPI5InJyE6zVDWpHkuDt1RjkGk-xQ/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly9tZWRp/YS5pc3RvY2twaG90/by5jb20vaWQvMTQ5/NTI4NTE0NC9waG90/by9zaGFoaS1rdWxm/aS1vci1rdWxmaS1p/bmNsdWRlLWtob3lh/LW1pbGstYmFkYW0t/YWxtb25kLXdpdGgt/c3RpY2stc2VydmVk/LWluLWRpc2gtaXNv/bGF0ZWQtb24uanBn/P3M9NjEyeDYxMiZ3/PTAmaz0yMCZjPS04/RXdrYlRtMHVKRVhx/OUxKdEZuNThKQWtV/WUlwSlVSbGwtVXhp/eDhNM009",
			Available:    true,
			IsVegetarian: true,
		},
		{
			ID:           "8",
			Name:         "Gulab Jamun",
			Description:  "Soft milk dumplings in rose-flavored sugar syrup",
			Price:        9.99,
			Category:     models.CategoryDessert,
			Image:        "https://images.pexels.com/photos/7449105/pexels-photo-7449105.jpeg",
			Available:    true,
			IsVegetarian: true,
		},
	}
}
