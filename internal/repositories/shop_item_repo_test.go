package repositories

import (
	"context"
	"testing"

	"onlineshop/internal/models"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ShopItemRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    ShopItemRepository
	context context.Context
}

func (suite *ShopItemRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewShopItemRepo(mock)
	suite.context = context.Background()
}

func (suite *ShopItemRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestShopItemRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ShopItemRepoTestSuite))
}

func (suite *ShopItemRepoTestSuite) TestCreate_Success() {
	item := &models.ShopItem{
		Title:       "Mechanical Keyboard",
		Description: "Tenkeyless, brown switches",
		Price:       89.99,
	}

	suite.mock.ExpectQuery(`
		INSERT INTO shop_items \(title, description, price\)
		VALUES \(\$1, \$2, \$3\)
		RETURNING id
	`).WithArgs(item.Title, item.Description, item.Price).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	err := suite.repo.Create(suite.context, item)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), item.ID)
}

func (suite *ShopItemRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`
		SELECT id, title, description, price
		FROM shop_items
		WHERE id = \$1
	`).WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	item, err := suite.repo.GetByID(suite.context, 42)
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), item)
}

func (suite *ShopItemRepoTestSuite) TestListByCategory_Success() {
	rows := pgxmock.NewRows([]string{"id", "title", "description", "price"}).
		AddRow(int64(1), "Keyboard", "TKL", 89.99).
		AddRow(int64(4), "Mouse", "Wireless", 39.99)

	suite.mock.ExpectQuery(`
		SELECT i.id, i.title, i.description, i.price
		FROM shop_items i
		JOIN shop_item_category_association a ON a.shop_item_id = i.id
		WHERE a.category_id = \$1
		ORDER BY i.id ASC
		LIMIT \$2 OFFSET \$3
	`).WithArgs(int64(2), 100, 0).
		WillReturnRows(rows)

	items, err := suite.repo.ListByCategory(suite.context, 2, 100, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), "Keyboard", items[0].Title)
	assert.Equal(suite.T(), "Mouse", items[1].Title)
}

func (suite *ShopItemRepoTestSuite) TestCategoriesForItem_Empty() {
	suite.mock.ExpectQuery(`
		SELECT c.id, c.title, c.description
		FROM shop_item_categories c
		JOIN shop_item_category_association a ON a.category_id = c.id
		WHERE a.shop_item_id = \$1
		ORDER BY c.id ASC
	`).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description"}))

	categories, err := suite.repo.CategoriesForItem(suite.context, 3)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), categories)
	assert.Empty(suite.T(), categories)
}

func (suite *ShopItemRepoTestSuite) TestAddCategory_DuplicatePairIsNoop() {
	suite.mock.ExpectExec(`
		INSERT INTO shop_item_category_association \(shop_item_id, category_id\)
		VALUES \(\$1, \$2\)
		ON CONFLICT \(shop_item_id, category_id\) DO NOTHING
	`).WithArgs(int64(3), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err := suite.repo.AddCategory(suite.context, 3, 2)
	assert.NoError(suite.T(), err)
}

func (suite *ShopItemRepoTestSuite) TestIDsForCategory_Success() {
	rows := pgxmock.NewRows([]string{"shop_item_id"}).
		AddRow(int64(3)).
		AddRow(int64(4))

	suite.mock.ExpectQuery(`
		SELECT shop_item_id
		FROM shop_item_category_association
		WHERE category_id = \$1
		ORDER BY shop_item_id ASC
	`).WithArgs(int64(2)).
		WillReturnRows(rows)

	ids, err := suite.repo.IDsForCategory(suite.context, 2)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []int64{3, 4}, ids)
}

func (suite *ShopItemRepoTestSuite) TestClearCategories_Success() {
	suite.mock.ExpectExec(`DELETE FROM shop_item_category_association WHERE shop_item_id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err := suite.repo.ClearCategories(suite.context, 3)
	assert.NoError(suite.T(), err)
}
