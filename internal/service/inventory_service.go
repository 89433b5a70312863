package service

import (
	"errors"

	"go-stock-api/internal/model"
	"go-stock-api/internal/repository"
	"go-stock-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound signals an owner-scoped lookup miss. A resource owned by
// another user is reported exactly like a nonexistent one.
var ErrNotFound = errors.New("not found")

type InventoryService interface {
	ListProducts(ownerID uuid.UUID) ([]model.ProductResponse, error)
	CreateProduct(ownerID uuid.UUID, req *model.ProductRequest) (*model.ProductSummary, error)
	GetProduct(ownerID, id uuid.UUID) (*model.ProductResponse, error)
	UpdateProduct(ownerID, id uuid.UUID, req *model.ProductRequest) (*model.ProductSummary, error)
	DeleteProduct(ownerID, id uuid.UUID) error

	ListBatches(ownerID, productID uuid.UUID) ([]model.BatchResponse, error)
	CreateBatch(ownerID, productID uuid.UUID, req *model.BatchRequest) (*model.BatchResponse, error)
	GetBatch(ownerID, productID, batchID uuid.UUID) (*model.BatchResponse, error)
	UpdateBatch(ownerID, productID, batchID uuid.UUID, req *model.BatchRequest) (*model.BatchResponse, error)
	DeleteBatch(ownerID, productID, batchID uuid.UUID) error
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	batchRepo    repository.BatchRepository
	categoryRepo repository.CategoryRepository
	providerRepo repository.ProviderRepository
}

func NewInventoryService(
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	categoryRepo repository.CategoryRepository,
	providerRepo repository.ProviderRepository,
) InventoryService {
	return &inventoryService{
		productRepo:  productRepo,
		batchRepo:    batchRepo,
		categoryRepo: categoryRepo,
		providerRepo: providerRepo,
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// resolveCategory looks the category up in the caller's own records; a
// category id belonging to another user is rejected like an unknown one.
func (s *inventoryService) resolveCategory(ownerID, categoryID uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ownerID, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validator.FieldErrors{"category": "Category not found."}
		}
		return nil, err
	}
	return category, nil
}

func (s *inventoryService) resolveProvider(ownerID, providerID uuid.UUID) (*model.Provider, error) {
	provider, err := s.providerRepo.FindByID(ownerID, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validator.FieldErrors{"provider": "Provider not found."}
		}
		return nil, err
	}
	return provider, nil
}

func (s *inventoryService) ListProducts(ownerID uuid.UUID) ([]model.ProductResponse, error) {
	products, err := s.productRepo.FindAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	responses := make([]model.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, products[i].ToListResponse())
	}
	return responses, nil
}

func (s *inventoryService) CreateProduct(ownerID uuid.UUID, req *model.ProductRequest) (*model.ProductSummary, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errs
	}
	category, err := s.resolveCategory(ownerID, req.Category)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		OwnerID:    ownerID,
		CategoryID: category.ID,
		Label:      req.Label,
		Unit:       req.Unit,
		Icon:       req.Icon,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	product.Category = category

	summary := product.ToSummary()
	return &summary, nil
}

func (s *inventoryService) GetProduct(ownerID, id uuid.UUID) (*model.ProductResponse, error) {
	product, err := s.productRepo.FindByIDWithBatches(ownerID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	resp := product.ToResponse()
	return &resp, nil
}

func (s *inventoryService) UpdateProduct(ownerID, id uuid.UUID, req *model.ProductRequest) (*model.ProductSummary, error) {
	product, err := s.productRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errs
	}
	category, err := s.resolveCategory(ownerID, req.Category)
	if err != nil {
		return nil, err
	}

	// Owner is re-injected; client input can never reassign a product.
	product.OwnerID = ownerID
	product.CategoryID = category.ID
	product.Label = req.Label
	product.Unit = req.Unit
	product.Icon = req.Icon
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	product.Category = category

	summary := product.ToSummary()
	return &summary, nil
}

func (s *inventoryService) DeleteProduct(ownerID, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ownerID, id)
	if err != nil {
		return notFoundOr(err)
	}
	return s.productRepo.DeleteWithBatches(product)
}

func (s *inventoryService) ListBatches(ownerID, productID uuid.UUID) ([]model.BatchResponse, error) {
	product, err := s.productRepo.FindByID(ownerID, productID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	batches, err := s.batchRepo.FindAllByProduct(ownerID, product.ID)
	if err != nil {
		return nil, err
	}
	responses := make([]model.BatchResponse, 0, len(batches))
	for i := range batches {
		responses = append(responses, batches[i].ToResponse())
	}
	return responses, nil
}

func (s *inventoryService) CreateBatch(ownerID, productID uuid.UUID, req *model.BatchRequest) (*model.BatchResponse, error) {
	product, err := s.productRepo.FindByID(ownerID, productID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errs
	}
	provider, err := s.resolveProvider(ownerID, req.Provider)
	if err != nil {
		return nil, err
	}

	batch := &model.Batch{
		OwnerID:    ownerID,
		ProductID:  product.ID,
		ProviderID: provider.ID,
		Initial:    req.Initial,
		Current:    req.Current,
		Price:      req.Price,
		Purchase:   req.Purchase,
		Limit:      req.Limit,
	}
	if err := s.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	batch.Provider = provider

	resp := batch.ToResponse()
	return &resp, nil
}

func (s *inventoryService) GetBatch(ownerID, productID, batchID uuid.UUID) (*model.BatchResponse, error) {
	product, err := s.productRepo.FindByID(ownerID, productID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	batch, err := s.batchRepo.FindByID(ownerID, product.ID, batchID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	resp := batch.ToResponse()
	return &resp, nil
}

func (s *inventoryService) UpdateBatch(ownerID, productID, batchID uuid.UUID, req *model.BatchRequest) (*model.BatchResponse, error) {
	product, err := s.productRepo.FindByID(ownerID, productID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	batch, err := s.batchRepo.FindByID(ownerID, product.ID, batchID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errs
	}
	provider, err := s.resolveProvider(ownerID, req.Provider)
	if err != nil {
		return nil, err
	}

	batch.OwnerID = ownerID
	batch.ProductID = product.ID
	batch.ProviderID = provider.ID
	batch.Initial = req.Initial
	batch.Current = req.Current
	batch.Price = req.Price
	batch.Purchase = req.Purchase
	batch.Limit = req.Limit
	if err := s.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	batch.Provider = provider

	resp := batch.ToResponse()
	return &resp, nil
}

func (s *inventoryService) DeleteBatch(ownerID, productID, batchID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ownerID, productID)
	if err != nil {
		return notFoundOr(err)
	}
	batch, err := s.batchRepo.FindByID(ownerID, product.ID, batchID)
	if err != nil {
		return notFoundOr(err)
	}
	return s.batchRepo.Delete(batch)
}
