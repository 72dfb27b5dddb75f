package usecase

// CreateCurrencyInput defines the payload for creating a currency.
type CreateCurrencyInput struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Symbol       string  `json:"symbol" validate:"required,max=10"`
	ExchangeRate float64 `json:"exchangeRate" validate:"required,gt=0"`
	IsPrimary    bool    `json:"isPrimary"`
}

// CurrencyOutput is the full currency representation.
type CurrencyOutput struct {
	ID           int     `json:"id" validate:"omitempty,gte=0"`
	Name         string  `json:"name" validate:"required,max=100"`
	Symbol       string  `json:"symbol" validate:"required,max=10"`
	ExchangeRate float64 `json:"exchangeRate" validate:"required,gt=0"`
	IsPrimary    bool    `json:"isPrimary"`
}

// CurrencyUsecase exposes currency CRUD operations to the delivery layer.
type CurrencyUsecase = CRUDUsecase[CreateCurrencyInput, CurrencyOutput]

// ResourceID returns the id embedded in an update payload.
func (d CurrencyOutput) ResourceID() int { return d.ID }
