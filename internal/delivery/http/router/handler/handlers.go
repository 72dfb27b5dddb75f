package handler

import "backoffice/internal/usecase"

// Per-resource aliases over the generic handler. Each instantiation is its
// own type, so the DI container can tell the resources apart.
type (
	CityHandler     = ResourceHandler[usecase.CreateCityInput, usecase.CityOutput]
	DistrictHandler = ResourceHandler[usecase.CreateDistrictInput, usecase.DistrictOutput]
	BranchHandler   = ResourceHandler[usecase.CreateBranchInput, usecase.BranchOutput]
	CurrencyHandler = ResourceHandler[usecase.CreateCurrencyInput, usecase.CurrencyOutput]
	ProductHandler  = ResourceHandler[usecase.CreateProductInput, usecase.ProductOutput]
)

func NewCityHandler(service usecase.CityUsecase) *CityHandler {
	return NewResourceHandler(service)
}

func NewDistrictHandler(service usecase.DistrictUsecase) *DistrictHandler {
	return NewResourceHandler(service)
}

func NewBranchHandler(service usecase.BranchUsecase) *BranchHandler {
	return NewResourceHandler(service)
}

func NewCurrencyHandler(service usecase.CurrencyUsecase) *CurrencyHandler {
	return NewResourceHandler(service)
}

func NewProductHandler(service usecase.ProductUsecase) *ProductHandler {
	return NewResourceHandler(service)
}
