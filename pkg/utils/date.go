package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD. String vazia devolve fallback truncado ao dia.
func ParseDate(dateStr string, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return StartOfDay(fallback), nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}

func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
