package repository

import (
	"errors"
	"testing"
	"time"

	"go-stock-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, db *gorm.DB, owner *model.User) (*model.Product, *model.Provider) {
	t.Helper()
	category := &model.Category{OwnerID: owner.ID, Label: "Dairy"}
	require.NoError(t, db.Create(category).Error)
	provider := &model.Provider{OwnerID: owner.ID, Label: "Farm", Address: "1 Lane", City: "Lyon", Zipcode: "69000", Phone: "0400000000"}
	require.NoError(t, db.Create(provider).Error)
	product := &model.Product{OwnerID: owner.ID, CategoryID: category.ID, Label: "Milk", Unit: "L"}
	require.NoError(t, db.Create(product).Error)
	return product, provider
}

func TestProductDeleteCascadesToBatches(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "alice")
	product, provider := seedProduct(t, db, owner)

	repo := NewProductRepo(db)
	for i := 0; i < 2; i++ {
		batch := &model.Batch{
			OwnerID:    owner.ID,
			ProductID:  product.ID,
			ProviderID: provider.ID,
			Initial:    10,
			Current:    10,
			Purchase:   model.NewDate(2025, time.January, 1),
			Limit:      model.NewDate(2025, time.June, 1),
		}
		require.NoError(t, db.Create(batch).Error)
	}

	require.NoError(t, repo.DeleteWithBatches(product))

	var batchCount int64
	require.NoError(t, db.Model(&model.Batch{}).Where("product_id = ?", product.ID).Count(&batchCount).Error)
	require.Zero(t, batchCount)

	_, err := repo.FindByID(owner.ID, product.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductLookupIsOwnerScoped(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	product, _ := seedProduct(t, db, alice)

	repo := NewProductRepo(db)

	_, err := repo.FindByID(bob.ID, product.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindByID(alice.ID, product.ID)
	require.NoError(t, err)

	_, err = repo.FindByID(alice.ID, uuid.New())
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPreloadedBatchesOrderedByExpiryThenCurrent(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "alice")
	product, provider := seedProduct(t, db, owner)

	mk := func(current float64, limit model.Date) {
		batch := &model.Batch{
			OwnerID:    owner.ID,
			ProductID:  product.ID,
			ProviderID: provider.ID,
			Initial:    current,
			Current:    current,
			Purchase:   model.NewDate(2025, time.January, 1),
			Limit:      limit,
		}
		require.NoError(t, db.Create(batch).Error)
	}
	mk(5, model.NewDate(2025, time.August, 1))
	mk(2, model.NewDate(2025, time.March, 1))
	mk(1, model.NewDate(2025, time.August, 1))

	repo := NewProductRepo(db)
	loaded, err := repo.FindByIDWithBatches(owner.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Batches, 3)
	require.Equal(t, float64(2), loaded.Batches[0].Current)
	require.Equal(t, float64(1), loaded.Batches[1].Current)
	require.Equal(t, float64(5), loaded.Batches[2].Current)
}
