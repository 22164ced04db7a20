package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// KeyValueStore is a mock type for the storage.KeyValueStore interface.
type KeyValueStore struct {
	mock.Mock
}

func (_m *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	ret := _m.Called(ctx, key)
	return ret.String(0), ret.Bool(1), ret.Error(2)
}

func (_m *KeyValueStore) Set(ctx context.Context, key, value string) error {
	ret := _m.Called(ctx, key, value)
	return ret.Error(0)
}

func (_m *KeyValueStore) Remove(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

func NewKeyValueStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *KeyValueStore {
	m := &KeyValueStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
