package models

type PaymentTypesRequest struct {
	OrganizationIds []string `json:"organizationIds"`
}

type PaymentTypesResponse struct {
	PaymentTypes []PaymentType `json:"paymentTypes"`
}

type PaymentType struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PaymentTypeKind string `json:"paymentTypeKind"`
}
