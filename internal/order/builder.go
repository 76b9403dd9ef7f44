package order

import (
	"DineInWithSyrve/internal/syrveapi/models"
	"DineInWithSyrve/pkg/logging"
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Selection - все, что выбрал и ввел оператор к моменту сборки заказа.
// Числовые значения хранятся строками как введены, разбор - в Build
type Selection struct {
	OrganizationID  string
	TerminalGroupID string
	TableID         string
	CustomerName    string
	CustomerPhone   string
	ProductID       string
	Price           string
	Quantity        string
	PaymentTypeID   string
	PaymentTypeKind string
	PaymentSum      string
}

// ValidationError - некорректный ввод оператора
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("некорректное значение %s: %s", e.Field, e.Message)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *Selection) validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.OrganizationID, validation.Required),
		validation.Field(&s.TerminalGroupID, validation.Required),
		validation.Field(&s.TableID, validation.Required),
		validation.Field(&s.ProductID, validation.Required),
		validation.Field(&s.PaymentTypeID, validation.Required),
	)
}

// Build собирает документ заказа; order.id и positionId генерируются заново
// при каждом вызове и не переиспользуются между попытками отправки
func Build(s *Selection, transportToFrontTimeout int) (*models.CreateOrderRequest, error) {
	logger := logging.GetLogger()
	logger.Println("Build:>Start")
	defer logger.Println("Build:>End")

	if err := s.validate(); err != nil {
		return nil, &ValidationError{Field: "selection", Message: err.Error()}
	}

	// ParseFloat принимает NaN и Inf, в документ они попасть не должны
	price, err := strconv.ParseFloat(strings.TrimSpace(s.Price), 64)
	if err != nil || !isFinite(price) {
		return nil, &ValidationError{Field: "price", Message: "цена должна быть конечным числом"}
	}
	if price < 0 {
		return nil, &ValidationError{Field: "price", Message: "цена не может быть отрицательной"}
	}

	quantity, err := strconv.ParseFloat(strings.TrimSpace(s.Quantity), 64)
	if err != nil || !isFinite(quantity) {
		return nil, &ValidationError{Field: "quantity", Message: "количество должно быть конечным числом"}
	}
	if quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Message: "количество должно быть больше нуля"}
	}

	// sum = price * quantity, если сумма не задана или не разбирается
	paymentSum := price * quantity
	if strings.TrimSpace(s.PaymentSum) != "" {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s.PaymentSum), 64); err == nil && isFinite(v) {
			paymentSum = v
		} else {
			logger.Info("Некорректная сумма. Будет рассчитана автоматически.")
		}
	}
	if paymentSum < 0 {
		return nil, &ValidationError{Field: "paymentSum", Message: "сумма платежа не может быть отрицательной"}
	}

	customerName := strings.TrimSpace(s.CustomerName)
	if customerName == "" {
		customerName = "Guest"
	}

	paymentTypeKind := s.PaymentTypeKind
	if paymentTypeKind == "" {
		paymentTypeKind = "Cash"
	}

	orderID := uuid.NewString()
	positionID := uuid.NewString()
	logger.Debugf("orderID: %s, positionID: %s", orderID, positionID)

	request := &models.CreateOrderRequest{
		OrganizationID:  s.OrganizationID,
		TerminalGroupID: s.TerminalGroupID,
		Order: models.Order{
			ID:       orderID,
			TableIds: []string{s.TableID},
			Customer: models.Customer{
				Name: customerName,
				Type: "regular",
			},
			Phone: strings.TrimSpace(s.CustomerPhone),
			Items: []models.OrderItem{
				{
					PositionID: positionID,
					ProductID:  s.ProductID,
					Type:       "Product",
					Price:      price,
					Amount:     quantity,
				},
			},
			Payments: []models.Payment{
				{
					PaymentTypeKind:        paymentTypeKind,
					Sum:                    paymentSum,
					PaymentTypeID:          s.PaymentTypeID,
					IsProcessedExternally:  false,
					IsFiscalizedExternally: false,
					IsPrepay:               false,
				},
			},
		},
		CreateOrderSettings: models.CreateOrderSettings{
			ServicePrint:            false,
			TransportToFrontTimeout: transportToFrontTimeout,
			CheckStopList:           false,
		},
	}

	return request, nil
}
