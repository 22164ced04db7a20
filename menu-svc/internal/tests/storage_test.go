package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"menuboard/menu-svc/internal/domain"
	"menuboard/menu-svc/internal/mocks"
	"menuboard/menu-svc/internal/repository"
	"menuboard/menu-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", "v"))
	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)

	require.NoError(t, store.Remove(ctx, "k"))
	_, found, _ = store.Get(ctx, "k")
	assert.False(t, found)
}

func setupRedisStore(t *testing.T) (*miniredis.Miniredis, *storage.RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, storage.NewRedisStore(client, "menuboard:")
}

func TestRedisStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	mr, store := setupRedisStore(t)

	_, found, err := store.Get(ctx, "restaurants")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "restaurants", "[]"))
	raw, err := mr.Get("menuboard:restaurants")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
	assert.Equal(t, time.Duration(0), mr.TTL("menuboard:restaurants"))

	value, found, err := store.Get(ctx, "restaurants")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)

	require.NoError(t, store.Remove(ctx, "restaurants"))
	assert.False(t, mr.Exists("menuboard:restaurants"))
}

func TestRedisStore_ConnectionError(t *testing.T) {
	mr, store := setupRedisStore(t)
	mr.Close()

	_, _, err := store.Get(context.Background(), "restaurants")
	assert.Error(t, err)
}

func TestRedisStore_BacksRepositoryAcrossRestart(t *testing.T) {
	ctx := context.Background()
	mr, store := setupRedisStore(t)

	repo := openRepo(t, store)
	restID, err := repo.CreateRestaurant(ctx, domain.RestaurantInput{Name: "Cafe X"}, "alice", "pw1")
	require.NoError(t, err)
	_, _, err = repo.AuthenticateOwner(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("menuboard:"+repository.KeySession))

	reloaded := openRepo(t, store)
	rest, err := reloaded.GetRestaurant(restID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe X", rest.Name)
	assert.Equal(t, restID, reloaded.CurrentOwner().RestaurantID)

	require.NoError(t, reloaded.Logout(ctx))
	assert.False(t, mr.Exists("menuboard:"+repository.KeySession))
}

func setupPostgresStore(t *testing.T) (sqlmock.Sqlmock, *storage.PostgresStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return mock, storage.NewPostgresStore(db)
}

func TestPostgresStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		queryErr  error
		wantValue string
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "present",
			rows:      sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"R1"}]`),
			wantValue: `[{"id":"R1"}]`,
			wantFound: true,
		},
		{
			name: "absent",
			rows: sqlmock.NewRows([]string{"value"}),
		},
		{
			name:     "database error",
			queryErr: errors.New("connection reset"),
			wantErr:  true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mock, store := setupPostgresStore(t)
			query := mock.ExpectQuery("SELECT value FROM catalog_kv").WithArgs("restaurants")
			if testCase.queryErr != nil {
				query.WillReturnError(testCase.queryErr)
			} else {
				query.WillReturnRows(testCase.rows)
			}

			value, found, err := store.Get(context.Background(), "restaurants")

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.wantValue, value)
			assert.Equal(t, testCase.wantFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_SetUpserts(t *testing.T) {
	mock, store := setupPostgresStore(t)
	mock.ExpectExec("INSERT INTO catalog_kv").
		WithArgs("currentOwner", `{"restaurantId":"R1","username":"alice"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Set(context.Background(), "currentOwner", `{"restaurantId":"R1","username":"alice"}`)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Remove(t *testing.T) {
	mock, store := setupPostgresStore(t)
	mock.ExpectExec("DELETE FROM catalog_kv").
		WithArgs("currentOwner").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.Remove(context.Background(), "currentOwner"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_EnsureSchema(t *testing.T) {
	mock, store := setupPostgresStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS catalog_kv").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, store.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_EnsureSchemaError(t *testing.T) {
	mock, store := setupPostgresStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS catalog_kv").
		WillReturnError(errors.New("permission denied"))

	err := store.EnsureSchema()
	assert.ErrorContains(t, err, "ensure schema")
}

func TestKafkaPublisher_PublishEvent(t *testing.T) {
	ctx := context.Background()
	writer := mocks.NewMessageWriter(t)
	publisher := storage.NewKafkaPublisher(writer)

	event := domain.CatalogEvent{
		Type:         domain.EventDishAdded,
		RestaurantID: "R1",
		EntityID:     "D1",
		Timestamp:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	writer.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 || string(msgs[0].Key) != "R1" {
			return false
		}
		var got domain.CatalogEvent
		if err := json.Unmarshal(msgs[0].Value, &got); err != nil {
			return false
		}
		return got.Type == domain.EventDishAdded && got.EntityID == "D1" && got.Timestamp.Equal(event.Timestamp)
	})).Return(nil).Once()

	assert.NoError(t, publisher.PublishEvent(ctx, event))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	ctx := context.Background()
	writer := mocks.NewMessageWriter(t)
	publisher := storage.NewKafkaPublisher(writer)

	writer.On("WriteMessages", ctx, mock.Anything).Return(errors.New("broker unavailable")).Once()

	assert.Error(t, publisher.PublishEvent(ctx, domain.CatalogEvent{Type: domain.EventDishDeleted, RestaurantID: "R1"}))
}
