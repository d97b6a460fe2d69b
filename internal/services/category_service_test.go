package services

import (
	"context"
	"testing"

	"onlineshop/internal/models"

	pgx "github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

type MockShopItemRepository struct {
	mock.Mock
}

func (m *MockShopItemRepository) Create(ctx context.Context, item *models.ShopItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockShopItemRepository) GetByID(ctx context.Context, id int64) (*models.ShopItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShopItem), args.Error(1)
}

func (m *MockShopItemRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopItemRepository) Update(ctx context.Context, item *models.ShopItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockShopItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShopItemRepository) List(ctx context.Context, limit, offset int) ([]*models.ShopItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ShopItem), args.Error(1)
}

func (m *MockShopItemRepository) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*models.ShopItem, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ShopItem), args.Error(1)
}

func (m *MockShopItemRepository) CategoriesForItem(ctx context.Context, itemID int64) ([]*models.Category, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockShopItemRepository) AddCategory(ctx context.Context, itemID, categoryID int64) error {
	args := m.Called(ctx, itemID, categoryID)
	return args.Error(0)
}

func (m *MockShopItemRepository) ClearCategories(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockShopItemRepository) IDsForCategory(ctx context.Context, categoryID int64) ([]int64, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type CategoryServiceTestSuite struct {
	suite.Suite
	categories *MockCategoryRepository
	items      *MockShopItemRepository
	cache      *stubCache
	service    CategoryServiceInterface
	context    context.Context
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.categories = new(MockCategoryRepository)
	suite.items = new(MockShopItemRepository)
	suite.cache = newStubCache()
	suite.service = NewCategoryService(suite.categories, suite.items, suite.cache)
	suite.context = context.Background()
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (suite *CategoryServiceTestSuite) TestGetCategory_NotFound() {
	suite.categories.On("GetByID", suite.context, int64(99)).Return(nil, pgx.ErrNoRows)

	category, err := suite.service.GetCategory(suite.context, 99)
	assert.Nil(suite.T(), category)
	assert.ErrorIs(suite.T(), err, ErrCategoryNotFound)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_InvalidatesCachedItems() {
	// Cached shop items embed their categories, so a renamed category must
	// drop every linked item from the cache.
	suite.cache.items[3] = &models.ShopItem{ID: 3, Categories: []*models.Category{{ID: 2, Title: "Old"}}}
	suite.cache.items[4] = &models.ShopItem{ID: 4, Categories: []*models.Category{{ID: 2, Title: "Old"}}}
	suite.cache.items[8] = &models.ShopItem{ID: 8}

	existing := &models.Category{ID: 2, Title: "Old", Description: "Old description"}
	suite.categories.On("GetByID", suite.context, int64(2)).Return(existing, nil)
	suite.categories.On("Update", suite.context, mock.AnythingOfType("*models.Category")).Return(nil)
	suite.items.On("IDsForCategory", suite.context, int64(2)).Return([]int64{3, 4}, nil)

	newTitle := "New"
	category, err := suite.service.UpdateCategory(suite.context, 2, &models.CategoryUpdate{Title: &newTitle})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New", category.Title)
	assert.Nil(suite.T(), suite.cache.items[3])
	assert.Nil(suite.T(), suite.cache.items[4])
	assert.NotNil(suite.T(), suite.cache.items[8], "items outside the category stay cached")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_InvalidatesCachedItems() {
	suite.cache.items[3] = &models.ShopItem{ID: 3, Categories: []*models.Category{{ID: 2}}}

	suite.categories.On("Exists", suite.context, int64(2)).Return(true, nil)
	suite.items.On("IDsForCategory", suite.context, int64(2)).Return([]int64{3}, nil)
	suite.categories.On("Delete", suite.context, int64(2)).Return(nil)

	err := suite.service.DeleteCategory(suite.context, 2)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), suite.cache.items[3])
	suite.categories.AssertExpectations(suite.T())
	suite.items.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	suite.categories.On("Exists", suite.context, int64(99)).Return(false, nil)

	err := suite.service.DeleteCategory(suite.context, 99)
	assert.ErrorIs(suite.T(), err, ErrCategoryNotFound)
	suite.categories.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
	suite.items.AssertNotCalled(suite.T(), "IDsForCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	suite.categories.On("Create", suite.context, mock.AnythingOfType("*models.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Category).ID = 2
		}).Return(nil)

	category, err := suite.service.CreateCategory(suite.context, &models.CategoryCreate{
		Title:       "Peripherals",
		Description: "Input devices",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), category.ID)
}
