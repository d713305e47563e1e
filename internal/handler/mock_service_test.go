package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/session"
)

// MockSessionService mocks session.Service
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, params session.CreateParams) (*session.View, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.View), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, id string) (*session.View, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.View), args.Error(1)
}

func (m *MockSessionService) AddCard(ctx context.Context, id string, card domain.Card) (domain.Card, error) {
	args := m.Called(ctx, id, card)
	return args.Get(0).(domain.Card), args.Error(1)
}

func (m *MockSessionService) RunRound(ctx context.Context, id string) (*domain.RoundResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundResult), args.Error(1)
}

func (m *MockSessionService) AutoPlay(ctx context.Context, id string) ([]domain.RoundResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoundResult), args.Error(1)
}

func (m *MockSessionService) Restart(ctx context.Context, id, seed string) (*session.View, error) {
	args := m.Called(ctx, id, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.View), args.Error(1)
}

func (m *MockSessionService) Journal(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionService) BaseCards(ctx context.Context) []domain.Card {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Card)
}

func (m *MockSessionService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
