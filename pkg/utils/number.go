package utils

import (
	"strconv"
	"strings"
)

// ParseFloat converte números vindos como string; vazio vira 0 sem erro
func ParseFloat(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	return strconv.ParseFloat(value, 64)
}

// ParseInt aceita inteiros e decimais inteiros ("12.0"); vazio vira 0 sem erro
func ParseInt(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err == nil {
		return parsed, nil
	}

	f, floatErr := strconv.ParseFloat(value, 64)
	if floatErr != nil {
		return 0, err
	}

	return int64(f), nil
}
