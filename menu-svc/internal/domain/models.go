package domain

import "time"

// DefaultSectionID marks a dish that belongs to no section.
const DefaultSectionID = "default"

type Restaurant struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	LogoURL       string    `json:"logoUrl,omitempty"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	Sections      []Section `json:"sections"`
	Dishes        []Dish    `json:"dishes"`
}

type Section struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	RestaurantID string `json:"restaurantId"`
}

type Dish struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	ImageURL     string `json:"imageUrl"`
	RestaurantID string `json:"restaurantId"`
	SectionID    string `json:"sectionId"`
}

type OwnerCredential struct {
	RestaurantID string `json:"restaurantId"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

// Session is the currently authenticated owner.
type Session struct {
	RestaurantID string `json:"restaurantId"`
	Username     string `json:"username"`
}

type RestaurantInput struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	LogoURL       string `json:"logoUrl,omitempty"`
	CoverImageURL string `json:"coverImageUrl,omitempty"`
}

type SectionInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DishInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
}

// MenuGroup is one section of the public menu page together with its dishes.
type MenuGroup struct {
	Section Section `json:"section"`
	Dishes  []Dish  `json:"dishes"`
}

type Menu struct {
	Restaurant    Restaurant  `json:"restaurant"`
	Groups        []MenuGroup `json:"groups"`
	Uncategorized []Dish      `json:"uncategorized"`
	PublicURL     string      `json:"publicUrl"`
}

const (
	EventRestaurantCreated  = "restaurant_created"
	EventRestaurantDelisted = "restaurant_delisted"
	EventSectionAdded       = "section_added"
	EventSectionUpdated     = "section_updated"
	EventSectionDeleted     = "section_deleted"
	EventDishAdded          = "dish_added"
	EventDishUpdated        = "dish_updated"
	EventDishDeleted        = "dish_deleted"
)

type CatalogEvent struct {
	Type         string    `json:"type"`
	RestaurantID string    `json:"restaurantId"`
	EntityID     string    `json:"entityId"`
	Timestamp    time.Time `json:"timestamp"`
}
