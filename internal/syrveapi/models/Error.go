package models

import "fmt"

// AuthError - фатальная ошибка получения токена доступа
type AuthError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("ошибка авторизации; endpoint:%s; status:%d; body:%s; error:%v",
		e.Endpoint, e.StatusCode, e.Body, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// CatalogError - ошибка транспорта или схемы при чтении справочников;
// Scope - идентификаторы, которыми был ограничен запрос
type CatalogError struct {
	Endpoint   string
	Scope      []string
	StatusCode int
	Body       string
	Err        error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("ошибка при получении справочника; endpoint:%s; scope:%v; status:%d; body:%s; error:%v",
		e.Endpoint, e.Scope, e.StatusCode, e.Body, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// SubmissionError - ошибка при создании заказа
type SubmissionError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("ошибка при создании заказа; endpoint:%s; status:%d; body:%s; error:%v",
		e.Endpoint, e.StatusCode, e.Body, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
