package config

import "errors"

var (
	// ErrMissingToken возвращается, когда API-токен не задан ни в окружении, ни в файле
	ErrMissingToken = errors.New("config: missing API token (set DESKBIRD_TOKEN or token in deskbird.toml)")

	// ErrInvalidTimeZone возвращается при неизвестной IANA-зоне
	ErrInvalidTimeZone = errors.New("config: invalid timezone")
)
