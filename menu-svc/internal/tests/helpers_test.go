package tests

import (
	"context"
	"fmt"
	"testing"

	"menuboard/menu-svc/internal/repository"
	"menuboard/menu-svc/internal/storage"

	"github.com/stretchr/testify/require"
)

// sequenceIDs hands out "R1", "S1", "D1", ... so scenarios read naturally.
type sequenceIDs struct {
	next map[string]int
}

func newSequenceIDs() *sequenceIDs {
	return &sequenceIDs{next: map[string]int{}}
}

func (s *sequenceIDs) NewID(kind string) string {
	prefix := map[string]string{
		repository.KindRestaurant: "R",
		repository.KindSection:    "S",
		repository.KindDish:       "D",
	}[kind]
	s.next[kind]++
	return fmt.Sprintf("%s%d", prefix, s.next[kind])
}

// fixedIDs replays ids in order, to force collisions.
type fixedIDs struct {
	ids []string
}

func (f *fixedIDs) NewID(string) string {
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id
}

func openRepo(t *testing.T, store storage.KeyValueStore) *repository.Repository {
	t.Helper()
	repo, err := repository.Open(context.Background(), store, repository.WithIDGenerator(newSequenceIDs()))
	require.NoError(t, err)
	return repo
}
