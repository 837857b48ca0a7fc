package utils

import (
	"strings"
	"time"
)

// ParseCalendarDate aceita datas ISO (2006-01-02) ou timestamps RFC3339 e retorna o início do dia em UTC
func ParseCalendarDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	date, err := time.Parse(time.DateOnly, dateStr)
	if err == nil {
		return date, nil
	}

	timestamp, tsErr := time.Parse(time.RFC3339, dateStr)
	if tsErr != nil {
		return time.Time{}, err
	}

	return StartOfDay(timestamp), nil
}

// StartOfDay retorna 00:00:00.000 UTC do dia informado
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay retorna 23:59:59.999 UTC do dia informado
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}
