package shop

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MultiplierShop/internal/domain"
)

// MockItemSource implements ItemSource for testing
type MockItemSource struct {
	mock.Mock
}

func (m *MockItemSource) Items() []domain.MultiplierItem {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.MultiplierItem)
}

func (m *MockItemSource) Resolve(query string) (domain.MultiplierItem, error) {
	args := m.Called(query)
	return args.Get(0).(domain.MultiplierItem), args.Error(1)
}
