package book_resource

import (
	"fmt"
	"time"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/pkg/dateparse"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.Resource == "" {
		return fmt.Errorf("%w: resource token is required", ErrInvalidInput)
	}
	return nil
}

// normalizeTimeOrDefault нормализует время или возвращает default при пустом вводе
func normalizeTimeOrDefault(input, def string) (string, error) {
	if input == "" {
		return def, nil
	}
	return dateparse.NormalizeTime(input)
}

// buildInstant собирает момент времени из канонических даты и времени в UTC.
// Интервалы бронирования полуоткрытые: [start, end)
func buildInstant(date, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateFormat+" "+domain.TimeFormat, date+" "+hhmm, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to build instant: %v", ErrInternal, err)
	}
	return t, nil
}
