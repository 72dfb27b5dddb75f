package impl

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

// ResourceServiceParams holds the shared dependencies for the resource
// services, injected by Fx.
type ResourceServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCityService is the constructor for the city resource service.
func NewCityService(params ResourceServiceParams, repo repository.CRUDRepository[*entity.City]) usecase.CityUsecase {
	return newCRUDService(
		repo,
		func(input usecase.CreateCityInput) *entity.City {
			return &entity.City{Name: input.Name}
		},
		func(dto usecase.CityOutput) *entity.City {
			return &entity.City{ID: dto.ID, Name: dto.Name}
		},
		func(data *entity.City) usecase.CityOutput {
			return usecase.CityOutput{ID: data.ID, Name: data.Name}
		},
		params.Config,
		params.Logger,
	)
}

// NewDistrictService is the constructor for the district resource service.
func NewDistrictService(params ResourceServiceParams, repo repository.CRUDRepository[*entity.District]) usecase.DistrictUsecase {
	return newCRUDService(
		repo,
		func(input usecase.CreateDistrictInput) *entity.District {
			return &entity.District{
				Name:   input.Name,
				Notes:  input.Notes,
				CityID: input.CityID,
			}
		},
		func(dto usecase.DistrictOutput) *entity.District {
			return &entity.District{
				ID:     dto.ID,
				Name:   dto.Name,
				Notes:  dto.Notes,
				CityID: dto.CityID,
			}
		},
		func(data *entity.District) usecase.DistrictOutput {
			return usecase.DistrictOutput{
				ID:     data.ID,
				Name:   data.Name,
				Notes:  data.Notes,
				CityID: data.CityID,
			}
		},
		params.Config,
		params.Logger,
	)
}

// NewBranchService is the constructor for the branch resource service.
func NewBranchService(params ResourceServiceParams, repo repository.CRUDRepository[*entity.Branch]) usecase.BranchUsecase {
	return newCRUDService(
		repo,
		func(input usecase.CreateBranchInput) *entity.Branch {
			return &entity.Branch{
				Name:        input.Name,
				ManagerName: input.ManagerName,
				PhoneNumber: input.PhoneNumber,
				Address:     input.Address,
				Latitude:    input.Latitude,
				Longitude:   input.Longitude,
				CityID:      input.CityID,
				DistrictID:  input.DistrictID,
				StoreID:     input.StoreID,
				IsPublish:   input.IsPublish,
			}
		},
		func(dto usecase.BranchOutput) *entity.Branch {
			return &entity.Branch{
				ID:          dto.ID,
				Name:        dto.Name,
				ManagerName: dto.ManagerName,
				PhoneNumber: dto.PhoneNumber,
				Address:     dto.Address,
				Latitude:    dto.Latitude,
				Longitude:   dto.Longitude,
				CityID:      dto.CityID,
				DistrictID:  dto.DistrictID,
				StoreID:     dto.StoreID,
				IsPublish:   dto.IsPublish,
			}
		},
		func(data *entity.Branch) usecase.BranchOutput {
			return usecase.BranchOutput{
				ID:          data.ID,
				Name:        data.Name,
				ManagerName: data.ManagerName,
				PhoneNumber: data.PhoneNumber,
				Address:     data.Address,
				Latitude:    data.Latitude,
				Longitude:   data.Longitude,
				CityID:      data.CityID,
				DistrictID:  data.DistrictID,
				StoreID:     data.StoreID,
				IsPublish:   data.IsPublish,
			}
		},
		params.Config,
		params.Logger,
	)
}

// NewCurrencyService is the constructor for the currency resource service.
func NewCurrencyService(params ResourceServiceParams, repo repository.CRUDRepository[*entity.Currency]) usecase.CurrencyUsecase {
	return newCRUDService(
		repo,
		func(input usecase.CreateCurrencyInput) *entity.Currency {
			return &entity.Currency{
				Name:         input.Name,
				Symbol:       input.Symbol,
				ExchangeRate: input.ExchangeRate,
				IsPrimary:    input.IsPrimary,
			}
		},
		func(dto usecase.CurrencyOutput) *entity.Currency {
			return &entity.Currency{
				ID:           dto.ID,
				Name:         dto.Name,
				Symbol:       dto.Symbol,
				ExchangeRate: dto.ExchangeRate,
				IsPrimary:    dto.IsPrimary,
			}
		},
		func(data *entity.Currency) usecase.CurrencyOutput {
			return usecase.CurrencyOutput{
				ID:           data.ID,
				Name:         data.Name,
				Symbol:       data.Symbol,
				ExchangeRate: data.ExchangeRate,
				IsPrimary:    data.IsPrimary,
			}
		},
		params.Config,
		params.Logger,
	)
}

// NewProductService is the constructor for the product resource service.
func NewProductService(params ResourceServiceParams, repo repository.CRUDRepository[*entity.Product]) usecase.ProductUsecase {
	return newCRUDService(
		repo,
		func(input usecase.CreateProductInput) *entity.Product {
			return &entity.Product{
				NameAr:          input.NameAr,
				NameEn:          input.NameEn,
				ParentProductID: input.ParentProductID,
				StoreID:         input.StoreID,
				SalePrice:       input.SalePrice,
				PurchasePrice:   input.PurchasePrice,
				ProductCode:     input.ProductCode,
				Barcode:         input.Barcode,
				ExtraBarcode:    input.ExtraBarcode,
				TypeID:          input.TypeID,
				Photo:           input.Photo,
				CreatedAt:       time.Now().UTC(),
				IsPublish:       input.IsPublish,
			}
		},
		func(dto usecase.ProductOutput) *entity.Product {
			return &entity.Product{
				ID:              dto.ID,
				NameAr:          dto.NameAr,
				NameEn:          dto.NameEn,
				ParentProductID: dto.ParentProductID,
				StoreID:         dto.StoreID,
				SalePrice:       dto.SalePrice,
				PurchasePrice:   dto.PurchasePrice,
				ProductCode:     dto.ProductCode,
				Barcode:         dto.Barcode,
				ExtraBarcode:    dto.ExtraBarcode,
				TypeID:          dto.TypeID,
				Photo:           dto.Photo,
				CreatedAt:       dto.CreatedAt,
				IsPublish:       dto.IsPublish,
			}
		},
		func(data *entity.Product) usecase.ProductOutput {
			return usecase.ProductOutput{
				ID:              data.ID,
				NameAr:          data.NameAr,
				NameEn:          data.NameEn,
				ParentProductID: data.ParentProductID,
				StoreID:         data.StoreID,
				SalePrice:       data.SalePrice,
				PurchasePrice:   data.PurchasePrice,
				ProductCode:     data.ProductCode,
				Barcode:         data.Barcode,
				ExtraBarcode:    data.ExtraBarcode,
				TypeID:          data.TypeID,
				Photo:           data.Photo,
				CreatedAt:       data.CreatedAt,
				IsPublish:       data.IsPublish,
			}
		},
		params.Config,
		params.Logger,
	)
}
