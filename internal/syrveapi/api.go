package syrveapi

import (
	"DineInWithSyrve/internal/syrveapi/models"
	"DineInWithSyrve/internal/transport"
	"DineInWithSyrve/pkg/logging"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

type SYRVEAPI interface {
	GetAccessToken(apiLogin string) (string, error)
	GetOrganizations(token string) ([]models.Organization, error)
	GetTerminalGroups(token string, organizationIDs []string) ([]models.TerminalGroup, error)
	GetAvailableRestaurantSections(token string, terminalGroupIDs []string) ([]models.RestaurantSection, error)
	GetPaymentTypes(token string, organizationIDs []string) ([]models.PaymentType, error)
	CreateOrder(token string, order *models.CreateOrderRequest) (*models.CreateOrderResponse, error)
}

var syrveapiGlobal *syrveapi

type syrveapi struct {
	url           string
	client        *transport.Client
	timeoutRead   time.Duration
	timeoutCreate time.Duration
}

func is2xx(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func maskLogin(apiLogin string) string {
	if len(apiLogin) <= 4 {
		return "****"
	}
	return apiLogin[:4] + "****"
}

func (s *syrveapi) GetAccessToken(apiLogin string) (string, error) {
	logger := logging.GetLogger()
	logger.Println("GetAccessToken:>Start")
	defer logger.Println("GetAccessToken:>End")

	endpoint := "/access_token"
	logger.Debugf("Endpoint: %s, apiLogin: %s", endpoint, maskLogin(apiLogin))

	r, err := s.client.Post(endpoint, "", &models.AccessTokenRequest{ApiLogin: apiLogin}, s.timeoutRead)
	if err != nil {
		return "", &models.AuthError{Endpoint: endpoint, Err: err}
	}

	if !is2xx(r.StatusCode) {
		logger.Errorf("Ошибка при получении токена, status: %d, body: %s", r.StatusCode, string(r.Body))
		return "", &models.AuthError{Endpoint: endpoint, StatusCode: r.StatusCode, Body: string(r.Body)}
	}

	var accessToken models.AccessTokenResponse
	err = json.Unmarshal(r.Body, &accessToken)
	if err != nil {
		return "", &models.AuthError{Endpoint: endpoint, StatusCode: r.StatusCode, Body: string(r.Body),
			Err: errors.Wrap(err, "failed json.Unmarshal()")}
	}

	if accessToken.Token == "" {
		logger.Error("Не удалось получить токен из ответа.")
		return "", &models.AuthError{Endpoint: endpoint, StatusCode: r.StatusCode, Body: string(r.Body),
			Err: errors.New("в ответе отсутствует поле token")}
	}

	logger.Info("Получен токен доступа")
	return accessToken.Token, nil
}

func (s *syrveapi) GetOrganizations(token string) ([]models.Organization, error) {
	logger := logging.GetLogger()
	logger.Println("GetOrganizations:>Start")
	defer logger.Println("GetOrganizations:>End")

	endpoint := "/organizations"
	logger.Debugf("Endpoint: %s", endpoint)

	r, err := s.client.Get(endpoint, token, s.timeoutRead)
	if err != nil {
		return nil, &models.CatalogError{Endpoint: endpoint, Err: err}
	}

	if !is2xx(r.StatusCode) {
		logger.Errorf("Ошибка при получении организаций, status: %d, body: %s", r.StatusCode, string(r.Body))
		return nil, &models.CatalogError{Endpoint: endpoint, StatusCode: r.StatusCode, Body: string(r.Body)}
	}

	var organizations models.OrganizationsResponse
	err = json.Unmarshal(r.Body, &organizations)
	if err != nil {
		return nil, &models.CatalogError{Endpoint: endpoint, StatusCode: r.StatusCode, Body: string(r.Body),
			Err: errors.Wrap(err, "failed json.Unmarshal()")}
	}

	logger.Infof("Получено организаций: %d", len(organizations.Organizations))
	return organizations.Organizations, nil
}

func (s *syrveapi) GetTerminalGroups(token string, organizationIDs []string) ([]models.TerminalGroup, error) {
	logger := logging.GetLogger()
	logger.Println("GetTerminalGroups:>Start")
	defer logger.Println("GetTerminalGroups:>End")

	endpoint := "/terminal_groups"
	logger.Debugf("Endpoint: %s, organizationIDs: %v", endpoint, organizationIDs)

	payload := &models.TerminalGroupsRequest{
		OrganizationIds:    organizationIDs,
		IncludeDisabled:    true,
		ReturnExternalData: []string{"string"},
	}

	r, err := s.client.Post(endpoint, token, payload, s.timeoutRead)
	if err != nil {
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: organizationIDs, Err: err}
	}

	if !is2xx(r.StatusCode) {
		logger.Errorf("Ошибка при получении терминальных групп, status: %d, body: %s", r.StatusCode, string(r.Body))
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: organizationIDs, StatusCode: r.StatusCode, Body: string(r.Body)}
	}

	var response models.TerminalGroupsResponse
	err = json.Unmarshal(r.Body, &response)
	if err != nil {
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: organizationIDs, StatusCode: r.StatusCode, Body: string(r.Body),
			Err: errors.Wrap(err, "failed json.Unmarshal()")}
	}

	// активные группы идут первыми, затем спящие; признак сна дальше не используется
	blocks := append(response.TerminalGroups, response.TerminalGroupsInSleep...)

	var terminalGroups []models.TerminalGroup
	for _, block := range blocks {
		for _, item := range block.Items {
			if item.ID == "" {
				continue
			}
			name := item.Name
			if name == "" {
				name = "NoName"
			}
			terminalGroups = append(terminalGroups, models.TerminalGroup{
				ID:             item.ID,
				Name:           name,
				OrganizationID: block.OrganizationID,
			})
		}
	}

	logger.Infof("Получено терминальных групп: %d", len(terminalGroups))
	return terminalGroups, nil
}

func (s *syrveapi) GetAvailableRestaurantSections(token string, terminalGroupIDs []string) ([]models.RestaurantSection, error) {
	logger := logging.GetLogger()
	logger.Println("GetAvailableRestaurantSections:>Start")
	defer logger.Println("GetAvailableRestaurantSections:>End")

	endpoint := "/reserve/available_restaurant_sections"
	logger.Debugf("Endpoint: %s, terminalGroupIDs: %v", endpoint, terminalGroupIDs)

	payload := &models.AvailableRestaurantSectionsRequest{
		TerminalGroupIds: terminalGroupIDs,
		ReturnSchema:     false,
		Revision:         0,
	}

	r, err := s.client.Post(endpoint, token, payload, s.timeoutRead)
	if err != nil {
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: terminalGroupIDs, Err: err}
	}

	if !is2xx(r.StatusCode) {
		logger.Errorf("Ошибка при получении секций ресторанов, status: %d, body: %s", r.StatusCode, string(r.Body))
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: terminalGroupIDs, StatusCode: r.StatusCode, Body: string(r.Body)}
	}

	var response models.AvailableRestaurantSectionsResponse
	err = json.Unmarshal(r.Body, &response)
	if err != nil {
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: terminalGroupIDs, StatusCode: r.StatusCode, Body: string(r.Body),
			Err: errors.Wrap(err, "failed json.Unmarshal()")}
	}

	logger.Infof("Получено секций ресторанов: %d", len(response.RestaurantSections))
	return response.RestaurantSections, nil
}

func (s *syrveapi) GetPaymentTypes(token string, organizationIDs []string) ([]models.PaymentType, error) {
	logger := logging.GetLogger()
	logger.Println("GetPaymentTypes:>Start")
	defer logger.Println("GetPaymentTypes:>End")

	endpoint := "/payment_types"
	logger.Debugf("Endpoint: %s, organizationIDs: %v", endpoint, organizationIDs)

	payload := &models.PaymentTypesRequest{OrganizationIds: organizationIDs}

	r, err := s.client.Post(endpoint, token, payload, s.timeoutRead)
	if err != nil {
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: organizationIDs, Err: err}
	}

	if !is2xx(r.StatusCode) {
		logger.Errorf("Ошибка при получении типов оплаты, status: %d, body: %s", r.StatusCode, string(r.Body))
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: organizationIDs, StatusCode: r.StatusCode, Body: string(r.Body)}
	}

	var response models.PaymentTypesResponse
	err = json.Unmarshal(r.Body, &response)
	if err != nil {
		return nil, &models.CatalogError{Endpoint: endpoint, Scope: organizationIDs, StatusCode: r.StatusCode, Body: string(r.Body),
			Err: errors.Wrap(err, "failed json.Unmarshal()")}
	}

	logger.Infof("Получено типов оплаты: %d", len(response.PaymentTypes))
	return response.PaymentTypes, nil
}

// CreateOrder отправляет заказ; запись на удаленной стороне, поэтому таймаут
// увеличен, а повтор при ошибке не выполняется - новый order.id при повторе
// означал бы риск дубля заказа
func (s *syrveapi) CreateOrder(token string, order *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	logger := logging.GetLogger()
	logger.Println("CreateOrder:>Start")
	defer logger.Println("CreateOrder:>End")

	endpoint := "/order/create"
	logger.Debugf("Endpoint: %s, organizationId: %s, terminalGroupId: %s, orderId: %s",
		endpoint, order.OrganizationID, order.TerminalGroupID, order.Order.ID)

	r, err := s.client.Post(endpoint, token, order, s.timeoutCreate)
	if err != nil {
		return nil, &models.SubmissionError{Endpoint: endpoint, Err: err}
	}

	if !is2xx(r.StatusCode) {
		logger.Errorf("Ошибка при создании заказа, status: %d, body: %s", r.StatusCode, string(r.Body))
		return nil, &models.SubmissionError{Endpoint: endpoint, StatusCode: r.StatusCode, Body: string(r.Body)}
	}

	var response models.CreateOrderResponse
	err = json.Unmarshal(r.Body, &response)
	if err != nil {
		return nil, &models.SubmissionError{Endpoint: endpoint, StatusCode: r.StatusCode, Body: string(r.Body),
			Err: errors.Wrap(err, "failed json.Unmarshal()")}
	}
	response.Raw = r.Body

	logger.Infof("Заказ создан успешно. Ответ: %s", string(r.Body))
	return &response, nil
}

func NewAPI(url string, timeoutRead, timeoutCreate time.Duration) SYRVEAPI {
	syrveapiGlobal = &syrveapi{
		url:           url,
		client:        transport.NewClient(transport.NewSender(url)),
		timeoutRead:   timeoutRead,
		timeoutCreate: timeoutCreate,
	}
	return syrveapiGlobal
}

func GetAPI() SYRVEAPI {
	return syrveapiGlobal
}
