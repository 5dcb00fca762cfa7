package catalog

import (
	"strings"

	"github.com/RekhaKadam/sonna-s-cafe/models"
)

// Menu is the café's static menu, in display order. The storefront never
// mutates it; the cart only reads name, price, image and loyalty points.
var Menu = []models.MenuCategory{
	{
		Name: "Small Bites",
		Items: []models.MenuItem{
			{Name: "Korean Bun", Price: 160, Rating: 4.5, ImageRef: "images/korean-bun.jpg", SpiceLevel: 1, LoyaltyPoints: 5},
			{Name: "Chilli Korean Bun", Price: 170, Rating: 4.7, ImageRef: "images/chilli-korean-bun.jpg", SpiceLevel: 3, LoyaltyPoints: 5},
			{Name: "Potato Wedges", Price: 120, Rating: 4.2, ImageRef: "images/potato-wedges.jpg", SpiceLevel: 0, LoyaltyPoints: 3},
			{Name: "Chilli Garlic Wedges", Price: 150, Rating: 4.4, ImageRef: "images/chilli-garlic-wedges.jpg", SpiceLevel: 2, LoyaltyPoints: 4},
			{Name: "Cauliflower Florets", Price: 260, Rating: 4.6, ImageRef: "images/cauliflower-florets.jpg", SpiceLevel: 1, LoyaltyPoints: 8},
			{Name: "Sliders", Price: 185, Description: "Mini Burgers (2 sliders)", Rating: 4.8, ImageRef: "images/sliders.jpg", SpiceLevel: 1, LoyaltyPoints: 6},
			{Name: "Sliders Appetizers", Price: 260, Rating: 4.5, ImageRef: "images/sliders-appetizers.jpg", SpiceLevel: 1, LoyaltyPoints: 8},
			{Name: "Paneer Appetizers", Price: 260, Rating: 4.3, ImageRef: "images/paneer-appetizers.jpg", SpiceLevel: 2, LoyaltyPoints: 8},
		},
	},
	{
		Name: "House Specials",
		Items: []models.MenuItem{
			{Name: "Amritsari Chole with House Baked Kulche", Price: 240, Description: "Homemade Punjabi style Chole filled with love", Rating: 4.9, ImageRef: "images/amritsari-chole.jpg", SpiceLevel: 2, LoyaltyPoints: 10},
			{Name: "Khao Suey", Price: 280, Description: "Coconut based Curry filled with noodles and loads of condiments", Rating: 4.8, ImageRef: "images/khao-suey.jpg", SpiceLevel: 2, LoyaltyPoints: 10},
			{Name: "Paneer Tikka/Butter Masala with Rice or Kulcha", Price: 295, Description: "Creamy Paneer Tikka (spicy) or Butter Masala served with Rice or Kulcha (your choice)", Rating: 4.7, ImageRef: "images/paneer-tikka-masala.jpg", SpiceLevel: 2, LoyaltyPoints: 10},
			{Name: "Dal Makhni with Rice or Kulcha", Price: 295, Description: "Creamy homemade Kali Dal served with Rice or Kulcha (your choice)", Rating: 4.6, ImageRef: "images/dal-makhni.jpg", SpiceLevel: 1, LoyaltyPoints: 10},
			{Name: "Paneer Tikka", Price: 290, Rating: 4.5, ImageRef: "images/paneer-tikka.jpg", SpiceLevel: 2, LoyaltyPoints: 9},
			{Name: "Customise Your Own Pizza", Price: 0, Rating: 4.0, ImageRef: "images/custom-pizza.jpg", SpiceLevel: 0, LoyaltyPoints: 0},
		},
	},
	{
		Name: "Pizza",
		Items: []models.MenuItem{
			{Name: "Margherita", Price: 230, Description: "Hand Rolled Thin Crust", Rating: 4.4, ImageRef: "images/margherita.jpg", SpiceLevel: 0, LoyaltyPoints: 7},
			{Name: "Mexican", Price: 270, Description: "Loaded Vegetables", Rating: 4.6, ImageRef: "images/mexican.jpg", SpiceLevel: 2, LoyaltyPoints: 8},
			{Name: "Fantasy", Price: 270, Description: "Onions, Bellpeppers, Paneer, Coriander, and Oregano", Rating: 4.5, ImageRef: "images/fantasy.jpg", SpiceLevel: 1, LoyaltyPoints: 8},
			{Name: "Cleitia", Price: 290, Description: "Mushroom, Pickled Onion, Chilli Garlic Oil, Basil", Rating: 4.7, ImageRef: "images/cleitia.jpg", SpiceLevel: 2, LoyaltyPoints: 9},
			{Name: "Neapolitan", Price: 290, Description: "Onions, Bellpeppers, Black Olives, Jalepeno, Chilli Garlic Oil", Rating: 4.6, ImageRef: "images/neapolitan.jpg", SpiceLevel: 3, LoyaltyPoints: 9},
			{Name: "Rustic", Price: 290, Description: "Onions, Garlic Oil, Spinach, Oregano", Rating: 4.4, ImageRef: "images/rustic.jpg", SpiceLevel: 1, LoyaltyPoints: 9},
		},
	},
	{
		Name: "Drinks",
		Items: []models.MenuItem{
			{Name: "Iced Teas", Price: 120, Rating: 4.2, ImageRef: "images/iced-teas.jpg", SpiceLevel: 0, LoyaltyPoints: 3},
			{Name: "Peach/Lemon/Blueberry", Price: 130, Rating: 4.3, ImageRef: "images/fruit-iced-tea.jpg", SpiceLevel: 0, LoyaltyPoints: 3},
			{Name: "Cucumber Lemonade", Price: 140, Rating: 4.4, ImageRef: "images/cucumber-lemonade.jpg", SpiceLevel: 0, LoyaltyPoints: 4},
			{Name: "Mojito", Price: 140, Rating: 4.5, ImageRef: "images/mojito.jpg", SpiceLevel: 0, LoyaltyPoints: 4},
			{Name: "Cold Coffee", Price: 120, Rating: 4.6, ImageRef: "images/cold-coffee.jpg", SpiceLevel: 0, LoyaltyPoints: 3},
			{Name: "Milkshakes", Price: 160, Description: "KitKat/Vanilla/Strawberry/Chocolate", Rating: 4.7, ImageRef: "images/milkshakes.jpg", SpiceLevel: 0, LoyaltyPoints: 5},
		},
	},
}

// Addons is the fixed catalog of extras attachable to any cart line.
var Addons = []models.Addon{
	{ID: "vanilla-ice-cream", Name: "Vanilla Ice Cream", Price: 50},
	{ID: "chocolate-ice-cream", Name: "Chocolate Ice Cream", Price: 60},
	{ID: "whipped-cream", Name: "Whipped Cream", Price: 30},
	{ID: "caramel-sauce", Name: "Caramel Sauce", Price: 25},
	{ID: "chocolate-sauce", Name: "Chocolate Sauce", Price: 25},
}

// Upsell is the dessert strip offered alongside the cart.
var Upsell = []models.MenuItem{
	{Name: "Vanilla Scoop", Price: 50, Rating: 4.5, ImageRef: "images/vanilla-scoop.jpg", LoyaltyPoints: 2},
	{Name: "Chocolate Scoop", Price: 60, Rating: 4.6, ImageRef: "images/chocolate-scoop.jpg", LoyaltyPoints: 2},
	{Name: "Strawberry Scoop", Price: 55, Rating: 4.4, ImageRef: "images/strawberry-scoop.jpg", LoyaltyPoints: 2},
}

// FindItem looks an item up by name, case-insensitively, across every
// category and the upsell strip.
func FindItem(name string) (models.MenuItem, bool) {
	for _, cat := range Menu {
		for _, item := range cat.Items {
			if strings.EqualFold(item.Name, name) {
				return item, true
			}
		}
	}
	for _, item := range Upsell {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// FindAddon looks an addon up by id.
func FindAddon(id string) (models.Addon, bool) {
	for _, a := range Addons {
		if a.ID == id {
			return a, true
		}
	}
	return models.Addon{}, false
}
