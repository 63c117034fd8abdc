// Package render текстовое представление результатов команд.
// Вывод собирается в строку, запись в терминал остаётся за командой.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/book_resource"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/cancel_booking"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/check_in"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/list_availability"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/my_bookings"
	"github.com/eternauta1337/skill-deskbird/internal/usecase/status_overview"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	freeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	busyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// groupTitles заголовки групп ресурсов
var groupTitles = map[domain.ResourceType]string{
	domain.TypeFlexDesk:    "Desks",
	domain.TypeMeetingRoom: "Meeting rooms",
	domain.TypeParking:     "Parking",
	domain.TypeOther:       "Other",
}

func groupTitle(t domain.ResourceType) string {
	if title, ok := groupTitles[t]; ok {
		return title
	}
	return string(t)
}

func timeRange(start, end time.Time, loc *time.Location) string {
	return fmt.Sprintf("%s–%s",
		start.In(loc).Format(domain.TimeFormat),
		end.In(loc).Format(domain.TimeFormat))
}

// Availability расписание офиса на день, по группам типов
func Availability(resp *list_availability.Response, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("%s — %s", resp.Office.Name, resp.Date)))

	for _, group := range resp.Groups {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, groupStyle.Render(groupTitle(group.Type)))
		for _, r := range group.Resources {
			if r.IsFree() {
				fmt.Fprintf(&b, "  %s  %s\n", r.Resource.Name, freeStyle.Render("free"))
				continue
			}
			slots := make([]string, len(r.Occupations))
			for i, o := range r.Occupations {
				slots[i] = fmt.Sprintf("%s %s", timeRange(o.Start, o.End, loc), o.Occupant)
			}
			fmt.Fprintf(&b, "  %s  %s\n", r.Resource.Name, busyStyle.Render(strings.Join(slots, ", ")))
		}
	}
	return b.String()
}

// MyBookings бронирования пользователя по датам
func MyBookings(resp *my_bookings.Response, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("Your bookings %s .. %s", resp.From, resp.To)))

	if len(resp.Days) == 0 {
		fmt.Fprintln(&b, dimStyle.Render("no bookings"))
		return b.String()
	}

	for _, day := range resp.Days {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, groupStyle.Render(day.Date))
		for _, booking := range day.Bookings {
			name := "resource " + booking.ResourceID
			if booking.Resource != nil && booking.Resource.Name != "" {
				name = booking.Resource.Name
			}
			fmt.Fprintf(&b, "  %s  %s %s\n",
				timeRange(booking.StartTime, booking.EndTime, loc),
				name,
				dimStyle.Render(fmt.Sprintf("(%s, check-in %s)", booking.Status, booking.CheckInStatus)))
		}
	}
	return b.String()
}

// Status сводка по столам на сегодня и завтра
func Status(resp *status_overview.Response, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(resp.Office.Name))

	for _, day := range resp.Days {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, groupStyle.Render(day.Date))
		if len(day.Desks) == 0 {
			fmt.Fprintln(&b, dimStyle.Render("  no desks"))
			continue
		}
		for _, desk := range day.Desks {
			if desk.IsFree() {
				fmt.Fprintf(&b, "  %s  %s\n", desk.Resource.Name, freeStyle.Render("free"))
				continue
			}
			slots := make([]string, len(desk.Occupations))
			for i, o := range desk.Occupations {
				slots[i] = fmt.Sprintf("%s %s", timeRange(o.Start, o.End, loc), o.Occupant)
			}
			fmt.Fprintf(&b, "  %s  %s\n", desk.Resource.Name, busyStyle.Render(strings.Join(slots, ", ")))
		}
	}
	return b.String()
}

// Offices список офисов аккаунта
func Offices(offices []domain.Office) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render("Offices"))
	for _, o := range offices {
		line := fmt.Sprintf("  %s  %s", o.ID, o.Name)
		if o.TimeZone != "" {
			line += "  " + dimStyle.Render(o.TimeZone)
		}
		fmt.Fprintln(&b, line)
	}
	return b.String()
}

// Resources список ресурсов офиса
func Resources(office *domain.Office, resources []domain.Resource) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("Resources — %s", office.Name)))
	for _, r := range resources {
		fmt.Fprintf(&b, "  %s  %s  %s\n", r.ID, r.Name, dimStyle.Render(string(r.Type)))
	}
	return b.String()
}

// Booked подтверждение созданного бронирования
func Booked(resp *book_resource.Response, loc *time.Location) string {
	return fmt.Sprintf("%s %s on %s %s %s\n",
		okStyle.Render("Booked"),
		resp.Resource.Name,
		resp.Date,
		timeRange(resp.Booking.StartTime, resp.Booking.EndTime, loc),
		dimStyle.Render("(booking "+resp.Booking.ID+")"))
}

// Cancelled подтверждение отмены
func Cancelled(resp *cancel_booking.Response, loc *time.Location) string {
	return fmt.Sprintf("%s %s on %s %s %s\n",
		okStyle.Render("Cancelled"),
		resp.Resource.Name,
		resp.Date,
		timeRange(resp.Booking.StartTime, resp.Booking.EndTime, loc),
		dimStyle.Render("(booking "+resp.Booking.ID+")"))
}

// CheckedIn подтверждение check-in
func CheckedIn(resp *check_in.Response, loc *time.Location) string {
	name := "resource " + resp.Booking.ResourceID
	if resp.Booking.Resource != nil && resp.Booking.Resource.Name != "" {
		name = resp.Booking.Resource.Name
	}
	return fmt.Sprintf("%s %s on %s %s\n",
		okStyle.Render("Checked in"),
		name,
		resp.Date,
		timeRange(resp.Booking.StartTime, resp.Booking.EndTime, loc))
}
