package bootstrap

import "github.com/spicevilla/catering/internal/models"

// seedItems returns a fresh copy so repeated seeding never reuses assigned
// ids.
func seedItems() []models.MenuItem {
	return []models.MenuItem{
		{
			Name:        "Chicken 65",
			Description: "Spicy, deep-fried chicken marinated in authentic Indian spices, served with mint chutney",
			Price:       12.99,
			Category:    "Appetizers",
		},
		{
			Name:        "Goat Fry",
			Description: "Tender pieces of goat marinated and fried with aromatic Indian spices",
			Price:       15.99,
			Category:    "Appetizers",
		},
		{
			Name:        "Special Biryani",
			Description: "Fragrant basmati rice cooked with tender meat, aromatic spices, and fresh herbs",
			Price:       18.99,
			Category:    "Main Course",
		},
		{
			Name:        "Traditional Thali",
			Description: "Complete Indian meal with rice, dal, curry, vegetables, roti, and accompaniments",
			Price:       16.99,
			Category:    "Main Course",
		},
		{
			Name:        "Gulab Jamun",
			Description: "Soft milk-solid dumplings soaked in rose and cardamom flavored sugar syrup",
			Price:       6.99,
			Category:    "Desserts",
		},
		{
			Name:        "Special Ice Cream",
			Description: "Choice of Indian flavors including mango, pistachio, and saffron",
			Price:       5.99,
			Category:    "Desserts",
		},
	}
}
