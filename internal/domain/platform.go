package domain

import (
	"errors"
	"fmt"
)

// Platform identifica a plataforma externa dona de uma credencial
type Platform string

const (
	PlatformMeta            Platform = "meta"
	PlatformGoogleAnalytics Platform = "google_analytics"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// ParsePlatform valida o identificador vindo da rota
func ParsePlatform(value string) (Platform, error) {
	p := Platform(value)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, value)
	}

	return p, nil
}

func (p Platform) Valid() bool {
	return p == PlatformMeta || p == PlatformGoogleAnalytics
}

func (p Platform) String() string {
	return string(p)
}
