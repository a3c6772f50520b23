package handlers

import (
	"time"
)

// naiveLayouts форматы "наивного" времени без смещения
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseInstant парсит момент времени из строки запроса.
// Принимает RFC 3339 со смещением зоны, либо наивное локальное время,
// которое интерпретируется в loc (зоне вызывающей стороны).
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	var lastErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
