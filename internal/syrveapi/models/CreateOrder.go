package models

type CreateOrderRequest struct {
	OrganizationID      string              `json:"organizationId"`
	TerminalGroupID     string              `json:"terminalGroupId"`
	Order               Order               `json:"order"`
	CreateOrderSettings CreateOrderSettings `json:"createOrderSettings"`
}

type Order struct {
	ID       string      `json:"id"`
	TableIds []string    `json:"tableIds"`
	Customer Customer    `json:"customer"`
	Phone    string      `json:"phone,omitempty"`
	Items    []OrderItem `json:"items"`
	Payments []Payment   `json:"payments"`
}

type Customer struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type OrderItem struct {
	PositionID string  `json:"positionId"`
	ProductID  string  `json:"productId"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	Amount     float64 `json:"amount"`
}

type Payment struct {
	PaymentTypeKind        string  `json:"paymentTypeKind"`
	Sum                    float64 `json:"sum"`
	PaymentTypeID          string  `json:"paymentTypeId"`
	IsProcessedExternally  bool    `json:"isProcessedExternally"`
	IsFiscalizedExternally bool    `json:"isFiscalizedExternally"`
	IsPrepay               bool    `json:"isPrepay"`
}

type CreateOrderSettings struct {
	ServicePrint            bool `json:"servicePrint"`
	TransportToFrontTimeout int  `json:"transportToFrontTimeout"`
	CheckStopList           bool `json:"checkStopList"`
}

// CreateOrderResponse - ответ сервера при создании заказа; состав полей
// зависит от версии API, поэтому дополнительно храним сырое тело
type CreateOrderResponse struct {
	CorrelationID string     `json:"correlationId"`
	OrderInfo     *OrderInfo `json:"orderInfo"`
	Raw           []byte     `json:"-"`
}

type OrderInfo struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Timestamp      int64  `json:"timestamp"`
	CreationStatus string `json:"creationStatus"`
}
