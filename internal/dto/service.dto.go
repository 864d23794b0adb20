package dto

type Service struct {
	ID          uint   `json:"id" validate:"required"`
	ServiceName string `json:"service_name" validate:"required"`
	Description string `json:"description"`
	Price       Money  `json:"price" validate:"gte=0"`
	Duration    int    `json:"duration" validate:"gte=0"`
}

// ServiceInput is the create/replace body for services/.
type ServiceInput struct {
	ServiceName string `json:"service_name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Duration    int    `json:"duration"`
}
