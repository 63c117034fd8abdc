// Package identity определяет текущего пользователя из окружения процесса.
// API не аутентифицирует пользователя — личность берётся из упорядоченной
// цепочки провайдеров, выигрывает первый непустой результат.
package identity

import (
	"os"
	"os/user"
)

// User identity of the person running the CLI
type User struct {
	ID   string
	Name string
}

// Provider именованный источник идентичности.
// Lookup возвращает (User, true) только когда провайдер дал непустой ID.
type Provider struct {
	Name   string
	Lookup func() (User, bool)
}

// Resolve возвращает идентичность от первого сработавшего провайдера.
// Цепочка DefaultProviders всегда завершается fallback-провайдером,
// поэтому при её использовании результат непустой.
func Resolve(providers []Provider) User {
	for _, p := range providers {
		if u, ok := p.Lookup(); ok {
			return u
		}
	}
	return User{ID: "unknown", Name: "User"}
}

// DefaultProviders возвращает стандартную цепочку:
// переменные DESKBIRD_* -> учётная запись ОС -> литеральный fallback
func DefaultProviders() []Provider {
	return []Provider{
		{Name: "env", Lookup: fromEnv},
		{Name: "os-user", Lookup: fromOSUser},
		{Name: "fallback", Lookup: fallback},
	}
}

func fromEnv() (User, bool) {
	id := os.Getenv("DESKBIRD_USER_ID")
	if id == "" {
		return User{}, false
	}
	name := os.Getenv("DESKBIRD_USER_NAME")
	if name == "" {
		name = "User"
	}
	return User{ID: id, Name: name}, true
}

func fromOSUser() (User, bool) {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		name := u.Name
		if name == "" {
			name = u.Username
		}
		return User{ID: u.Username, Name: name}, true
	}
	// user.Current может падать в урезанных окружениях (контейнеры без passwd)
	if v := os.Getenv("USER"); v != "" {
		return User{ID: v, Name: v}, true
	}
	if v := os.Getenv("USERNAME"); v != "" {
		return User{ID: v, Name: v}, true
	}
	return User{}, false
}

func fallback() (User, bool) {
	return User{ID: "unknown", Name: "User"}, true
}
