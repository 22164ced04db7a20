package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"menuboard/menu-svc/internal/domain"
)

// load reads the three records once. Absent or unreadable records fall back to
// their empty defaults; only store failures are returned.
func (r *Repository) load(ctx context.Context) error {
	raw, found, err := r.store.Get(ctx, KeyRestaurants)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeyRestaurants, err)
	}
	r.restaurants = []domain.Restaurant{}
	if found {
		r.restaurants = decodeRestaurants(raw)
	}

	raw, found, err = r.store.Get(ctx, KeyCredentials)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeyCredentials, err)
	}
	r.credentials = []domain.OwnerCredential{}
	if found {
		r.credentials = decodeCredentials(raw)
	}

	raw, found, err = r.store.Get(ctx, KeySession)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeySession, err)
	}
	r.session = nil
	if found {
		r.session = decodeSession(raw)
	}
	return nil
}

func decodeRestaurants(raw string) []domain.Restaurant {
	var restaurants []domain.Restaurant
	if err := json.Unmarshal([]byte(raw), &restaurants); err != nil {
		log.Printf("[menu-svc] discarding unreadable %s record: %v", KeyRestaurants, err)
		return []domain.Restaurant{}
	}
	if restaurants == nil {
		return []domain.Restaurant{}
	}
	for i := range restaurants {
		migrateRestaurant(&restaurants[i])
	}
	return restaurants
}

// migrateRestaurant fills in fields that records written by older versions lack.
func migrateRestaurant(rest *domain.Restaurant) {
	if rest.Sections == nil {
		rest.Sections = []domain.Section{}
	}
	if rest.Dishes == nil {
		rest.Dishes = []domain.Dish{}
	}
	for i := range rest.Sections {
		if rest.Sections[i].RestaurantID == "" {
			rest.Sections[i].RestaurantID = rest.ID
		}
	}
	for i := range rest.Dishes {
		if rest.Dishes[i].RestaurantID == "" {
			rest.Dishes[i].RestaurantID = rest.ID
		}
		if rest.Dishes[i].SectionID == "" {
			rest.Dishes[i].SectionID = domain.DefaultSectionID
		}
	}
}

func decodeCredentials(raw string) []domain.OwnerCredential {
	var credentials []domain.OwnerCredential
	if err := json.Unmarshal([]byte(raw), &credentials); err != nil {
		log.Printf("[menu-svc] discarding unreadable %s record: %v", KeyCredentials, err)
		return []domain.OwnerCredential{}
	}
	if credentials == nil {
		return []domain.OwnerCredential{}
	}
	return credentials
}

func decodeSession(raw string) *domain.Session {
	var session *domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		log.Printf("[menu-svc] discarding unreadable %s record: %v", KeySession, err)
		return nil
	}
	if session == nil || session.RestaurantID == "" {
		return nil
	}
	return session
}
