// Package dateparse приводит свободный пользовательский ввод дат и времени
// к каноническим форматам YYYY-MM-DD и HH:MM, которые ожидает remote API.
package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DateFormat канонический формат даты (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat канонический формат времени (HH:MM)
	TimeFormat = "15:04"
)

var (
	// D/M или D/M/YYYY, без ведущих нулей
	dayMonthRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}))?$`)

	// "19", "19h", "19hs"
	bareHourRe = regexp.MustCompile(`^(\d{1,2})(?:hs?)?$`)

	// "9:30", "09:30"
	hourMinuteRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// NormalizeDate приводит пользовательский ввод к канонической дате YYYY-MM-DD.
// Правила применяются по порядку, выигрывает первое совпавшее:
//  1. пусто / "today" / "hoy"          -> текущая дата
//  2. "tomorrow" / "mañana" / "manana" -> текущая дата + 1 день
//  3. строгий ISO-8601 (YYYY-MM-DD)
//  4. D/M или D/M/YYYY (год по умолчанию — текущий)
func NormalizeDate(input string, now time.Time) (string, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	switch s {
	case "", "today", "hoy":
		return now.Format(DateFormat), nil
	case "tomorrow", "mañana", "manana":
		return now.AddDate(0, 0, 1).Format(DateFormat), nil
	}

	if t, err := time.Parse(DateFormat, s); err == nil {
		return t.Format(DateFormat), nil
	}

	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}

		if err := validateCalendarDate(year, month, day); err != nil {
			return "", err
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
}

// NormalizeTime приводит пользовательский ввод к каноническому времени HH:MM.
// Принимает голый час ("19", "19h", "19hs") или HH:MM.
// Отсутствие значения обрабатывает вызывающая сторона (применяет свой default),
// здесь пустая строка — ошибка.
func NormalizeTime(input string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	if m := bareHourRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour > 23 {
			return "", fmt.Errorf("%w: hour out of range: %q", ErrInvalidTime, input)
		}
		return fmt.Sprintf("%02d:00", hour), nil
	}

	if m := hourMinuteRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return "", fmt.Errorf("%w: out of range: %q", ErrInvalidTime, input)
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTime, input)
}

// validateCalendarDate проверяет, что компоненты образуют реальную календарную дату
// (отсекает 31/2, 0/5 и т.п. — time.Date молча нормализует переполнение)
func validateCalendarDate(year, month, day int) error {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return fmt.Errorf("%w: %02d/%02d/%04d", ErrInvalidDate, day, month, year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return fmt.Errorf("%w: %02d/%02d/%04d", ErrInvalidDate, day, month, year)
	}
	return nil
}
