package blocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/structech/survey-api/internal/models"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateBlock(ctx context.Context, block *models.Block) error {
	args := m.Called(ctx, block)
	return args.Error(0)
}

func (m *MockRepository) GetBlockByID(ctx context.Context, id uint) (*models.Block, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Block), args.Error(1)
}

func (m *MockRepository) FindBlockByName(ctx context.Context, projectID uint, name string) (*models.Block, error) {
	args := m.Called(ctx, projectID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Block), args.Error(1)
}

func (m *MockRepository) ListBlocksByProject(ctx context.Context, projectID uint) ([]models.Block, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]models.Block), args.Error(1)
}

func (m *MockRepository) DeleteBlock(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestServiceImpl_CreateBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("trims name before create", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("CreateBlock", ctx, mock.AnythingOfType("*models.Block")).
			Run(func(args mock.Arguments) {
				b := args.Get(1).(*models.Block)
				assert.Equal(t, "B1", b.Name)
				assert.Equal(t, uint(7), b.ProjectID)
			}).
			Return(nil)

		block, err := service.CreateBlock(ctx, 7, "  B1  ")
		require.NoError(t, err)
		assert.Equal(t, "B1", block.Name)

		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		_, err := service.CreateBlock(ctx, 7, "   ")
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("creates on first sight then serves from cache", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)
		resolver := service.NewResolver(3)

		mockRepo.On("FindBlockByName", ctx, uint(3), "B1").Return(nil, nil).Once()
		mockRepo.On("CreateBlock", ctx, mock.AnythingOfType("*models.Block")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Block).ID = 42
			}).
			Return(nil).Once()

		id, err := resolver.Resolve(ctx, "B1")
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)

		// Second call must not touch the repository
		id, err = resolver.Resolve(ctx, " B1 ")
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)

		mockRepo.AssertExpectations(t)
	})

	t.Run("reuses existing block", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)
		resolver := service.NewResolver(3)

		existing := &models.Block{ProjectID: 3, Name: "B2"}
		existing.ID = 9
		mockRepo.On("FindBlockByName", ctx, uint(3), "B2").Return(existing, nil).Once()

		id, err := resolver.Resolve(ctx, "B2")
		require.NoError(t, err)
		assert.Equal(t, uint(9), id)

		mockRepo.AssertExpectations(t)
	})

	t.Run("falls back to lookup on duplicate insert", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)
		resolver := service.NewResolver(3)

		winner := &models.Block{ProjectID: 3, Name: "B3"}
		winner.ID = 11
		mockRepo.On("FindBlockByName", ctx, uint(3), "B3").Return(nil, nil).Once()
		mockRepo.On("CreateBlock", ctx, mock.AnythingOfType("*models.Block")).Return(ErrDuplicateBlock).Once()
		mockRepo.On("FindBlockByName", ctx, uint(3), "B3").Return(winner, nil).Once()

		id, err := resolver.Resolve(ctx, "B3")
		require.NoError(t, err)
		assert.Equal(t, uint(11), id)

		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		resolver := NewService(mockRepo).NewResolver(3)

		_, err := resolver.Resolve(ctx, "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}
