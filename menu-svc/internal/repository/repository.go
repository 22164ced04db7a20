// Package repository owns the restaurant catalog state and keeps it in sync
// with a key-value store. Every mutation rewrites the affected record in full
// before returning; a failed write is reported but the in-memory change stays.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"menuboard/menu-svc/internal/domain"
	"menuboard/menu-svc/internal/storage"
)

const (
	KeyRestaurants = "restaurants"
	KeyCredentials = "ownerCredentials"
	KeySession     = "currentOwner"
)

// ErrNotFound is returned when a mutation targets a restaurant, section or
// dish that does not exist. The state is left untouched in that case.
var ErrNotFound = errors.New("not found")

type Repository struct {
	mu    sync.RWMutex
	store storage.KeyValueStore
	ids   IDGenerator

	restaurants []domain.Restaurant
	credentials []domain.OwnerCredential
	session     *domain.Session
}

type Option func(*Repository)

func WithIDGenerator(ids IDGenerator) Option {
	return func(r *Repository) {
		r.ids = ids
	}
}

// Open loads the catalog from store. It fails only if the store itself fails.
func Open(ctx context.Context, store storage.KeyValueStore, opts ...Option) (*Repository, error) {
	r := &Repository{store: store, ids: UUIDGenerator{}}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) Restaurants() []domain.Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Restaurant, 0, len(r.restaurants))
	for _, rest := range r.restaurants {
		out = append(out, cloneRestaurant(rest))
	}
	return out
}

func (r *Repository) GetRestaurant(id string) (*domain.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	rest := cloneRestaurant(r.restaurants[idx])
	return &rest, nil
}

// CreateRestaurant adds a restaurant with empty sections and dishes, paired
// with one owner credential. The id is returned even if persisting fails.
func (r *Repository) CreateRestaurant(ctx context.Context, data domain.RestaurantInput, username, password string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID(KindRestaurant, func(id string) bool { return r.indexOf(id) >= 0 })
	r.restaurants = append(r.restaurants, domain.Restaurant{
		ID:            id,
		Name:          data.Name,
		Description:   data.Description,
		LogoURL:       data.LogoURL,
		CoverImageURL: data.CoverImageURL,
		Sections:      []domain.Section{},
		Dishes:        []domain.Dish{},
	})
	r.credentials = append(r.credentials, domain.OwnerCredential{
		RestaurantID: id,
		Username:     username,
		Password:     password,
	})

	if err := r.saveRestaurants(ctx); err != nil {
		return id, err
	}
	return id, r.saveCredentials(ctx)
}

// DelistRestaurant removes the restaurant and its owner credential. An active
// session for that restaurant is left in place.
func (r *Repository) DelistRestaurant(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.restaurants = append(r.restaurants[:idx], r.restaurants[idx+1:]...)

	kept := r.credentials[:0]
	for _, cred := range r.credentials {
		if cred.RestaurantID != id {
			kept = append(kept, cred)
		}
	}
	r.credentials = kept

	if err := r.saveRestaurants(ctx); err != nil {
		return err
	}
	return r.saveCredentials(ctx)
}

func (r *Repository) AddSection(ctx context.Context, restaurantID string, data domain.SectionInput) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(restaurantID)
	if idx < 0 {
		return "", ErrNotFound
	}
	rest := &r.restaurants[idx]
	id := r.newID(KindSection, func(id string) bool { return sectionIndex(rest.Sections, id) >= 0 })
	rest.Sections = append(rest.Sections, domain.Section{
		ID:           id,
		Name:         data.Name,
		Description:  data.Description,
		RestaurantID: restaurantID,
	})
	return id, r.saveRestaurants(ctx)
}

func (r *Repository) UpdateSection(ctx context.Context, section domain.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(section.RestaurantID)
	if idx < 0 {
		return ErrNotFound
	}
	rest := &r.restaurants[idx]
	sIdx := sectionIndex(rest.Sections, section.ID)
	if sIdx < 0 {
		return ErrNotFound
	}
	rest.Sections[sIdx] = section
	return r.saveRestaurants(ctx)
}

// DeleteSection removes the section and every dish filed under it.
func (r *Repository) DeleteSection(ctx context.Context, sectionID, restaurantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(restaurantID)
	if idx < 0 {
		return ErrNotFound
	}
	rest := &r.restaurants[idx]
	sIdx := sectionIndex(rest.Sections, sectionID)
	if sIdx < 0 {
		return ErrNotFound
	}
	rest.Sections = append(rest.Sections[:sIdx], rest.Sections[sIdx+1:]...)

	kept := make([]domain.Dish, 0, len(rest.Dishes))
	for _, dish := range rest.Dishes {
		if dish.SectionID != sectionID {
			kept = append(kept, dish)
		}
	}
	rest.Dishes = kept
	return r.saveRestaurants(ctx)
}

// AddDish files a new dish under sectionID, which is not checked against the
// restaurant's sections. An empty sectionID means uncategorized.
func (r *Repository) AddDish(ctx context.Context, restaurantID, sectionID string, data domain.DishInput) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(restaurantID)
	if idx < 0 {
		return "", ErrNotFound
	}
	if sectionID == "" {
		sectionID = domain.DefaultSectionID
	}
	rest := &r.restaurants[idx]
	id := r.newID(KindDish, func(id string) bool { return dishIndex(rest.Dishes, id) >= 0 })
	rest.Dishes = append(rest.Dishes, domain.Dish{
		ID:           id,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		ImageURL:     data.ImageURL,
		RestaurantID: restaurantID,
		SectionID:    sectionID,
	})
	return id, r.saveRestaurants(ctx)
}

func (r *Repository) UpdateDish(ctx context.Context, dish domain.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(dish.RestaurantID)
	if idx < 0 {
		return ErrNotFound
	}
	rest := &r.restaurants[idx]
	dIdx := dishIndex(rest.Dishes, dish.ID)
	if dIdx < 0 {
		return ErrNotFound
	}
	if dish.SectionID == "" {
		dish.SectionID = domain.DefaultSectionID
	}
	rest.Dishes[dIdx] = dish
	return r.saveRestaurants(ctx)
}

func (r *Repository) DeleteDish(ctx context.Context, dishID, restaurantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(restaurantID)
	if idx < 0 {
		return ErrNotFound
	}
	rest := &r.restaurants[idx]
	dIdx := dishIndex(rest.Dishes, dishID)
	if dIdx < 0 {
		return ErrNotFound
	}
	rest.Dishes = append(rest.Dishes[:dIdx], rest.Dishes[dIdx+1:]...)
	return r.saveRestaurants(ctx)
}

// AuthenticateOwner looks for an exact username and password match, taking the
// first one when a username is shared. On success the session is replaced.
// ok is false when nothing matched; err only reports a failed session write.
func (r *Repository) AuthenticateOwner(ctx context.Context, username, password string) (restaurantID string, ok bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cred := range r.credentials {
		if cred.Username == username && cred.Password == password {
			r.session = &domain.Session{RestaurantID: cred.RestaurantID, Username: cred.Username}
			return cred.RestaurantID, true, r.saveSession(ctx)
		}
	}
	return "", false, nil
}

func (r *Repository) Logout(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return r.saveSession(ctx)
}

// CurrentOwner returns nil when nobody is logged in.
func (r *Repository) CurrentOwner() *domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.session == nil {
		return nil
	}
	session := *r.session
	return &session
}

func (r *Repository) indexOf(id string) int {
	for i := range r.restaurants {
		if r.restaurants[i].ID == id {
			return i
		}
	}
	return -1
}

func sectionIndex(sections []domain.Section, id string) int {
	for i := range sections {
		if sections[i].ID == id {
			return i
		}
	}
	return -1
}

func dishIndex(dishes []domain.Dish, id string) int {
	for i := range dishes {
		if dishes[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) newID(kind string, taken func(string) bool) string {
	for {
		if id := r.ids.NewID(kind); !taken(id) {
			return id
		}
	}
}

func (r *Repository) saveRestaurants(ctx context.Context) error {
	return r.saveJSON(ctx, KeyRestaurants, r.restaurants)
}

func (r *Repository) saveCredentials(ctx context.Context) error {
	return r.saveJSON(ctx, KeyCredentials, r.credentials)
}

// saveSession removes the key on logout instead of writing an empty value.
func (r *Repository) saveSession(ctx context.Context) error {
	if r.session == nil {
		if err := r.store.Remove(ctx, KeySession); err != nil {
			return fmt.Errorf("persist %s: %w", KeySession, err)
		}
		return nil
	}
	return r.saveJSON(ctx, KeySession, r.session)
}

func (r *Repository) saveJSON(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func cloneRestaurant(rest domain.Restaurant) domain.Restaurant {
	out := rest
	out.Sections = append([]domain.Section{}, rest.Sections...)
	out.Dishes = append([]domain.Dish{}, rest.Dishes...)
	return out
}
