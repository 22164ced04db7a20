package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"menuboard/menu-svc/internal/domain"
	"menuboard/menu-svc/internal/repository"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type MenuService struct {
	repo      CatalogRepository
	qrEncoder QRGenerator
	publisher EventPublisher
	baseURL   string
	now       func() time.Time
}

// NewMenuService builds the service. qr and publisher may be nil.
func NewMenuService(repo CatalogRepository, qr QRGenerator, publisher EventPublisher, baseURL string) *MenuService {
	return &MenuService{
		repo:      repo,
		qrEncoder: qr,
		publisher: publisher,
		baseURL:   strings.TrimRight(baseURL, "/"),
		now:       time.Now,
	}
}

// List returns restaurants whose name contains query, ignoring case.
func (s *MenuService) List(query string) []domain.Restaurant {
	restaurants := s.repo.Restaurants()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return restaurants
	}
	filtered := make([]domain.Restaurant, 0, len(restaurants))
	for _, rest := range restaurants {
		if strings.Contains(strings.ToLower(rest.Name), query) {
			filtered = append(filtered, rest)
		}
	}
	return filtered
}

func (s *MenuService) Get(id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *MenuService) Create(ctx context.Context, data domain.RestaurantInput, username, password string) (string, error) {
	if err := required(map[string]string{
		"restaurant name": data.Name,
		"username":        username,
		"password":        password,
	}); err != nil {
		return "", err
	}
	id, err := s.repo.CreateRestaurant(ctx, data, username, password)
	if err != nil {
		return id, err
	}
	s.publish(ctx, domain.EventRestaurantCreated, id, id)
	return id, nil
}

func (s *MenuService) Delist(ctx context.Context, id string) error {
	if err := s.repo.DelistRestaurant(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, domain.EventRestaurantDelisted, id, id)
	return nil
}

func (s *MenuService) AddSection(ctx context.Context, restaurantID string, data domain.SectionInput) (string, error) {
	if err := required(map[string]string{"section name": data.Name}); err != nil {
		return "", err
	}
	id, err := s.repo.AddSection(ctx, restaurantID, data)
	if err != nil {
		return id, err
	}
	s.publish(ctx, domain.EventSectionAdded, restaurantID, id)
	return id, nil
}

func (s *MenuService) UpdateSection(ctx context.Context, section domain.Section) error {
	if err := required(map[string]string{"section name": section.Name}); err != nil {
		return err
	}
	if err := s.repo.UpdateSection(ctx, section); err != nil {
		return err
	}
	s.publish(ctx, domain.EventSectionUpdated, section.RestaurantID, section.ID)
	return nil
}

func (s *MenuService) DeleteSection(ctx context.Context, sectionID, restaurantID string) error {
	if err := s.repo.DeleteSection(ctx, sectionID, restaurantID); err != nil {
		return err
	}
	s.publish(ctx, domain.EventSectionDeleted, restaurantID, sectionID)
	return nil
}

func (s *MenuService) AddDish(ctx context.Context, restaurantID, sectionID string, data domain.DishInput) (string, error) {
	if err := required(map[string]string{"dish name": data.Name, "dish price": data.Price}); err != nil {
		return "", err
	}
	id, err := s.repo.AddDish(ctx, restaurantID, sectionID, data)
	if err != nil {
		return id, err
	}
	s.publish(ctx, domain.EventDishAdded, restaurantID, id)
	return id, nil
}

func (s *MenuService) UpdateDish(ctx context.Context, dish domain.Dish) error {
	if err := required(map[string]string{"dish name": dish.Name, "dish price": dish.Price}); err != nil {
		return err
	}
	if err := s.repo.UpdateDish(ctx, dish); err != nil {
		return err
	}
	s.publish(ctx, domain.EventDishUpdated, dish.RestaurantID, dish.ID)
	return nil
}

func (s *MenuService) DeleteDish(ctx context.Context, dishID, restaurantID string) error {
	if err := s.repo.DeleteDish(ctx, dishID, restaurantID); err != nil {
		return err
	}
	s.publish(ctx, domain.EventDishDeleted, restaurantID, dishID)
	return nil
}

// SetDishImage replaces only the image reference of an existing dish.
func (s *MenuService) SetDishImage(ctx context.Context, restaurantID, dishID, imageURL string) error {
	rest, err := s.repo.GetRestaurant(restaurantID)
	if err != nil {
		return err
	}
	for _, dish := range rest.Dishes {
		if dish.ID == dishID {
			dish.ImageURL = imageURL
			if err := s.repo.UpdateDish(ctx, dish); err != nil {
				return err
			}
			s.publish(ctx, domain.EventDishUpdated, restaurantID, dishID)
			return nil
		}
	}
	return fmt.Errorf("dish %s: %w", dishID, repository.ErrNotFound)
}

// Menu groups dishes under their sections in display order. Dishes filed
// under the default section or a section that no longer exists are collected
// in Uncategorized.
func (s *MenuService) Menu(id string) (*domain.Menu, error) {
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return nil, err
	}

	bySection := make(map[string][]domain.Dish, len(rest.Sections))
	for _, section := range rest.Sections {
		bySection[section.ID] = []domain.Dish{}
	}
	uncategorized := []domain.Dish{}
	for _, dish := range rest.Dishes {
		if _, ok := bySection[dish.SectionID]; ok {
			bySection[dish.SectionID] = append(bySection[dish.SectionID], dish)
			continue
		}
		uncategorized = append(uncategorized, dish)
	}

	groups := make([]domain.MenuGroup, 0, len(rest.Sections))
	for _, section := range rest.Sections {
		groups = append(groups, domain.MenuGroup{Section: section, Dishes: bySection[section.ID]})
	}

	return &domain.Menu{
		Restaurant:    *rest,
		Groups:        groups,
		Uncategorized: uncategorized,
		PublicURL:     s.PublicURL(rest.ID),
	}, nil
}

func (s *MenuService) PublicURL(id string) string {
	return s.baseURL + "/restaurant/" + id
}

func (s *MenuService) QRCode(id string) ([]byte, error) {
	if _, err := s.repo.GetRestaurant(id); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr code generation is not configured")
	}
	return s.qrEncoder.Generate(s.PublicURL(id))
}

func (s *MenuService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if err := required(map[string]string{"username": username, "password": password}); err != nil {
		return nil, err
	}
	restaurantID, ok, err := s.repo.AuthenticateOwner(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return &domain.Session{RestaurantID: restaurantID, Username: username}, nil
}

func (s *MenuService) Logout(ctx context.Context) error {
	return s.repo.Logout(ctx)
}

func (s *MenuService) CurrentOwner() *domain.Session {
	return s.repo.CurrentOwner()
}

func (s *MenuService) publish(ctx context.Context, eventType, restaurantID, entityID string) {
	if s.publisher == nil {
		return
	}
	event := domain.CatalogEvent{
		Type:         eventType,
		RestaurantID: restaurantID,
		EntityID:     entityID,
		Timestamp:    s.now(),
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		log.Printf("[menu-svc] publish %s for restaurant %s: %v", eventType, restaurantID, err)
	}
}

func required(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
}
