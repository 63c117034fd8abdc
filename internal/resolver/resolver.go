// Package resolver сопоставляет свободный пользовательский токен с ровно одним
// ресурсом офиса по трёхуровневой стратегии.
//
// WARNING: на третьем уровне (подстрока) при нескольких совпадениях выбирается
// первый кандидат в порядке входного списка. Это детерминированно, но неоднозначный
// токен вроде "desk" может забронировать не тот стол — уточняйте токен до полного
// имени или id.
package resolver

import (
	"fmt"
	"strings"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
)

// Resolve находит ресурс по токену среди кандидатов, уже отфильтрованных по офису.
// Уровни сопоставления, выигрывает первый непустой результат:
//  1. точное совпадение идентификатора
//  2. точное совпадение имени без учёта регистра
//  3. подстрока имени без учёта регистра (первый по порядку входа)
func Resolve(token string, candidates []domain.Resource) (*domain.Resource, error) {
	// Уровень 1: точный id
	for i := range candidates {
		if candidates[i].ID == token {
			return &candidates[i], nil
		}
	}

	needle := strings.ToLower(strings.TrimSpace(token))

	// Уровень 2: точное имя
	for i := range candidates {
		if strings.ToLower(candidates[i].Name) == needle {
			return &candidates[i], nil
		}
	}

	// Уровень 3: подстрока имени, первый по порядку входа
	if needle != "" {
		for i := range candidates {
			if strings.Contains(strings.ToLower(candidates[i].Name), needle) {
				return &candidates[i], nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrResourceNotFound, token)
}
