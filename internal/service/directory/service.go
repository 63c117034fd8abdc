// Package directory кэширующий справочник офисов и ресурсов.
// Кэш живёт в пределах одного процесса, инжектируется явно и не инвалидируется:
// один запуск CLI — один снимок справочных данных.
package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/internal/resolver"
)

// Service справочник офисов и ресурсов с процессным кэшем
type Service struct {
	client BookingClient
	logger Logger

	mu        sync.Mutex
	offices   []domain.Office
	resources map[string][]domain.Resource // ключ — ID офиса
}

// NewService создает новый экземпляр справочника
func NewService(client BookingClient, logger Logger) *Service {
	return &Service{
		client:    client,
		logger:    logger,
		resources: make(map[string][]domain.Resource),
	}
}

// Offices возвращает офисы аккаунта; после первого вызова отдаёт кэш
func (s *Service) Offices(ctx context.Context) ([]domain.Office, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offices != nil {
		return s.offices, nil
	}

	offices, err := s.client.ListOffices(ctx)
	if err != nil {
		return nil, err
	}
	if offices == nil {
		offices = []domain.Office{}
	}

	s.logger.Info("directory: cached %d offices", len(offices))
	s.offices = offices
	return offices, nil
}

// ResolveOffice возвращает офис по ID, а при пустом ID — единственный офис
// аккаунта, если он один
func (s *Service) ResolveOffice(ctx context.Context, officeID string) (*domain.Office, error) {
	offices, err := s.Offices(ctx)
	if err != nil {
		return nil, err
	}

	if officeID == "" {
		if len(offices) == 1 {
			return &offices[0], nil
		}
		return nil, ErrOfficeNotFound
	}

	for i := range offices {
		if offices[i].ID == officeID {
			return &offices[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrOfficeNotFound, officeID)
}

// OfficeResources возвращает все ресурсы офиса; после первого вызова отдаёт кэш.
// Фильтрация по типу выполняется вызывающей стороной поверх полного списка,
// чтобы кэш оставался одним на офис
func (s *Service) OfficeResources(ctx context.Context, officeID string) ([]domain.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.resources[officeID]; ok {
		return cached, nil
	}

	resources, err := s.client.ListResources(ctx, deskbird.ResourceFilter{OfficeID: officeID})
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []domain.Resource{}
	}

	s.logger.Info("directory: cached %d resources for office=%s", len(resources), officeID)
	s.resources[officeID] = resources
	return resources, nil
}

// ResolveResource находит ровно один ресурс офиса по свободному токену
func (s *Service) ResolveResource(ctx context.Context, officeID, token string) (*domain.Resource, error) {
	resources, err := s.OfficeResources(ctx, officeID)
	if err != nil {
		return nil, err
	}
	return resolver.Resolve(token, resources)
}
