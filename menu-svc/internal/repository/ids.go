package repository

import "github.com/google/uuid"

const (
	KindRestaurant = "restaurant"
	KindSection    = "section"
	KindDish       = "dish"
)

// IDGenerator hands out identities for new entities of the given kind.
type IDGenerator interface {
	NewID(kind string) string
}

// UUIDGenerator produces ids such as "dish-3f1c...". Random ids do not collide
// when entities are created within the same clock tick.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(kind string) string {
	return kind + "-" + uuid.NewString()
}

var _ IDGenerator = UUIDGenerator{}
