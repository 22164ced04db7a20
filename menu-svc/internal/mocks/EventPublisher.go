package mocks

import (
	"context"

	"menuboard/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// EventPublisher is a mock type for the service.EventPublisher interface.
type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) PublishEvent(ctx context.Context, event domain.CatalogEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
