package postgres

import (
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Per-entity constructors. Each one pins the generic repository to one
// entity/model pair so the DI container can provide them as distinct types.

func NewCityRepository(db *gorm.DB) repository.CRUDRepository[*entity.City] {
	return NewCRUDRepository[*entity.City, model.CityModel](db, model.CityFromEntity)
}

func NewDistrictRepository(db *gorm.DB) repository.CRUDRepository[*entity.District] {
	return NewCRUDRepository[*entity.District, model.DistrictModel](db, model.DistrictFromEntity)
}

func NewBranchRepository(db *gorm.DB) repository.CRUDRepository[*entity.Branch] {
	return NewCRUDRepository[*entity.Branch, model.BranchModel](db, model.BranchFromEntity)
}

func NewCurrencyRepository(db *gorm.DB) repository.CRUDRepository[*entity.Currency] {
	return NewCRUDRepository[*entity.Currency, model.CurrencyModel](db, model.CurrencyFromEntity)
}

func NewProductRepository(db *gorm.DB) repository.CRUDRepository[*entity.Product] {
	return NewCRUDRepository[*entity.Product, model.ProductModel](db, model.ProductFromEntity)
}

func NewOrderDetailRepository(db *gorm.DB) repository.CRUDRepository[*entity.OrderDetail] {
	return NewCRUDRepository[*entity.OrderDetail, model.OrderDetailModel](db, model.OrderDetailFromEntity)
}
