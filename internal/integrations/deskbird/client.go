// Package deskbird типизированный клиент deskbird API.
// Все вызовы несут bearer-токен и JSON content negotiation; списочные операции
// прозрачно разворачивают пагинированный конверт {data, total, limit, offset}.
// Клиент ничего не ретраит: rate limit и прочие сбои поднимаются наверх.
package deskbird

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с deskbird API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента deskbird API
func NewClient(baseURL, token string, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
		log:        log,
	}
}

// ListOffices возвращает офисы аккаунта
func (c *Client) ListOffices(ctx context.Context) ([]domain.Office, error) {
	models, err := listPage[officeModel](ctx, c, "/offices", url.Values{}, Page{})
	if err != nil {
		return nil, err
	}

	offices := make([]domain.Office, len(models))
	for i, m := range models {
		offices[i] = m.toDomain()
	}
	return offices, nil
}

// ListResources возвращает ресурсы с опциональной фильтрацией по офису, зоне и типу
func (c *Client) ListResources(ctx context.Context, filter ResourceFilter) ([]domain.Resource, error) {
	q := url.Values{}
	if filter.OfficeID != "" {
		q.Set("officeId", filter.OfficeID)
	}
	if filter.ZoneID != "" {
		q.Set("zoneId", filter.ZoneID)
	}
	if filter.Type != nil {
		q.Set("type", string(*filter.Type))
	}

	models, err := listPage[resourceModel](ctx, c, "/resources", q, filter.Page)
	if err != nil {
		return nil, err
	}

	resources := make([]domain.Resource, len(models))
	for i, m := range models {
		resources[i] = m.toDomain()
	}
	return resources, nil
}

// ListUsers возвращает пользователей аккаунта
func (c *Client) ListUsers(ctx context.Context, page Page) ([]domain.User, error) {
	models, err := listPage[userModel](ctx, c, "/users", url.Values{}, page)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(models))
	for i, m := range models {
		users[i] = m.toDomain()
	}
	return users, nil
}

// GetUser возвращает пользователя по ID
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &m); err != nil {
		return nil, err
	}
	u := m.toDomain()
	return &u, nil
}

// ListBookings возвращает бронирования по фильтру
func (c *Client) ListBookings(ctx context.Context, filter domain.BookingsFilter, page Page) ([]domain.Booking, error) {
	q := url.Values{}
	if filter.StartDate != "" {
		q.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("endDate", filter.EndDate)
	}
	if filter.UserID != "" {
		q.Set("userId", filter.UserID)
	}
	if filter.OfficeID != "" {
		q.Set("officeId", filter.OfficeID)
	}
	if filter.ResourceID != "" {
		q.Set("resourceId", filter.ResourceID)
	}
	if filter.ZoneID != "" {
		q.Set("zoneId", filter.ZoneID)
	}
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}

	models, err := listPage[bookingModel](ctx, c, "/bookings", q, page)
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, len(models))
	for i, m := range models {
		bookings[i] = m.toDomain()
	}
	return bookings, nil
}

// GetBooking возвращает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil, &m); err != nil {
		return nil, err
	}
	b := m.toDomain()
	return &b, nil
}

// CreateBooking создает бронирование.
// Имеет внешний side effect (резервация) — НИКОГДА не ретраится этим слоем.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var m bookingModel
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &m); err != nil {
		return nil, err
	}
	b := m.toDomain()
	c.log.Info("CreateBooking: created booking id=%s resource=%s", b.ID, b.ResourceID)
	return &b, nil
}

// UpdateBooking изменяет времена существующего бронирования
func (c *Client) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	var m bookingModel
	if err := c.do(ctx, http.MethodPatch, "/bookings/"+url.PathEscape(id), nil, req, &m); err != nil {
		return nil, err
	}
	b := m.toDomain()
	return &b, nil
}

// CancelBooking отменяет бронирование. Без тела запроса; успех — пустой ответ
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(id)+"/cancel", nil, nil, nil); err != nil {
		return err
	}
	c.log.Info("CancelBooking: cancelled booking id=%s", id)
	return nil
}

// CheckIn подтверждает присутствие по бронированию
func (c *Client) CheckIn(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(id)+"/checkin", nil, struct{}{}, &m); err != nil {
		return nil, err
	}
	b := m.toDomain()
	c.log.Info("CheckIn: checked in booking id=%s", b.ID)
	return &b, nil
}

// listPage выполняет списочный запрос и разворачивает пагинированный конверт,
// возвращая только элементы. Дефолты пагинации: limit=100, offset=0
func listPage[T any](ctx context.Context, c *Client, path string, q url.Values, page Page) ([]T, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(page.Offset))

	var envelope paginatedEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, q, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// do выполняет один HTTP-вызов: bearer-заголовок, JSON-тело, классификация
// статуса и декодирование ответа в out (nil out — ответ не читается)
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body interface{}, out interface{}) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrInternal, err)
	}

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		c.log.Warn("%s %s -> %d", method, path, resp.StatusCode)
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInternal, err)
	}
	return nil
}
