package order

import (
	"DineInWithSyrve/internal/syrveapi/models"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validSelection() *Selection {
	return &Selection{
		OrganizationID:  "org-1",
		TerminalGroupID: "tg-1",
		TableID:         "table-1",
		CustomerName:    "Иван",
		CustomerPhone:   "+37100000000",
		ProductID:       "product-1",
		Price:           "10.0",
		Quantity:        "2.0",
		PaymentTypeID:   "pay-1",
		PaymentTypeKind: "Cash",
	}
}

func TestBuildDefaultPaymentSum(t *testing.T) {

	Assert := assert.New(t)

	request, err := Build(validSelection(), 15)
	Assert.NoError(err)

	Assert.Equal(20.0, request.Order.Payments[0].Sum)
	Assert.Equal(10.0, request.Order.Items[0].Price)
	Assert.Equal(2.0, request.Order.Items[0].Amount)
	Assert.Equal("Product", request.Order.Items[0].Type)
	Assert.Equal("regular", request.Order.Customer.Type)
	Assert.Equal([]string{"table-1"}, request.Order.TableIds)
	Assert.Equal(15, request.CreateOrderSettings.TransportToFrontTimeout)
}

func TestBuildExplicitPaymentSum(t *testing.T) {

	Assert := assert.New(t)

	s := validSelection()
	s.PaymentSum = "18.50"

	request, err := Build(s, 15)
	Assert.NoError(err)
	Assert.Equal(18.5, request.Order.Payments[0].Sum)
}

func TestBuildUnparseablePaymentSumFallsBack(t *testing.T) {

	Assert := assert.New(t)

	for _, sum := range []string{"abc", "NaN", "-Inf"} {
		s := validSelection()
		s.PaymentSum = sum

		request, err := Build(s, 15)
		Assert.NoErrorf(err, "сумма %q", sum)
		Assert.Equalf(20.0, request.Order.Payments[0].Sum, "сумма %q", sum)
	}
}

func TestBuildValidationErrors(t *testing.T) {

	Assert := assert.New(t)

	tests := []struct {
		name   string
		mutate func(*Selection)
	}{
		{"пустой productId", func(s *Selection) { s.ProductID = "" }},
		{"нечисловая цена", func(s *Selection) { s.Price = "десять" }},
		{"отрицательная цена", func(s *Selection) { s.Price = "-1" }},
		{"цена NaN", func(s *Selection) { s.Price = "NaN" }},
		{"бесконечная цена", func(s *Selection) { s.Price = "+Inf" }},
		{"нечисловое количество", func(s *Selection) { s.Quantity = "два" }},
		{"нулевое количество", func(s *Selection) { s.Quantity = "0" }},
		{"количество NaN", func(s *Selection) { s.Quantity = "NaN" }},
		{"бесконечное количество", func(s *Selection) { s.Quantity = "Inf" }},
		{"отрицательная сумма", func(s *Selection) { s.PaymentSum = "-5" }},
	}

	for _, tt := range tests {
		s := validSelection()
		tt.mutate(s)

		request, err := Build(s, 15)
		Assert.Nilf(request, "ожидался nil-документ: %s", tt.name)

		var validationErr *ValidationError
		Assert.Truef(errors.As(err, &validationErr), "ожидалась ValidationError: %s", tt.name)
	}
}

func TestBuildDefaultsNameAndKind(t *testing.T) {

	Assert := assert.New(t)

	s := validSelection()
	s.CustomerName = "   "
	s.CustomerPhone = ""
	s.PaymentTypeKind = ""

	request, err := Build(s, 15)
	Assert.NoError(err)
	Assert.Equal("Guest", request.Order.Customer.Name)
	Assert.Empty(request.Order.Phone)
	Assert.Equal("Cash", request.Order.Payments[0].PaymentTypeKind)

	b, err := json.Marshal(request)
	Assert.NoError(err)
	// пустой телефон не попадает в документ
	Assert.NotContains(string(b), `"phone"`)
}

func TestBuildGeneratesFreshIDs(t *testing.T) {

	Assert := assert.New(t)

	first, err := Build(validSelection(), 15)
	Assert.NoError(err)
	second, err := Build(validSelection(), 15)
	Assert.NoError(err)

	_, err = uuid.Parse(first.Order.ID)
	Assert.NoError(err)
	_, err = uuid.Parse(first.Order.Items[0].PositionID)
	Assert.NoError(err)

	Assert.NotEqual(first.Order.ID, second.Order.ID)
	Assert.NotEqual(first.Order.Items[0].PositionID, second.Order.Items[0].PositionID)
}

func TestBuildRoundTrip(t *testing.T) {

	Assert := assert.New(t)

	request, err := Build(validSelection(), 15)
	Assert.NoError(err)

	b, err := json.Marshal(request)
	Assert.NoError(err)

	var decoded models.CreateOrderRequest
	Assert.NoError(json.Unmarshal(b, &decoded))

	Assert.Equal(request.Order.Items, decoded.Order.Items)
	Assert.Equal(request.Order.Payments, decoded.Order.Payments)
	Assert.Equal(request.Order.Customer, decoded.Order.Customer)
	Assert.Equal(request.CreateOrderSettings, decoded.CreateOrderSettings)
}
