package schedule

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/pkg/types"
)

// ToInstant переводит локальное настенное время wall в дату date (в зоне loc)
// и возвращает абсолютный момент времени в UTC. Смещение зоны разрешается
// для конкретной даты, поэтому переходы на летнее время обрабатываются корректно.
func ToInstant(date time.Time, wall types.WallTime, loc *time.Location) time.Time {
	return wall.OnDate(date, loc)
}

// ToWallTime раскладывает абсолютный момент времени на календарную дату
// (полночь в зоне loc) и настенное время в этой зоне.
// Для любой валидной пары (date, wall): ToWallTime(ToInstant(date, wall, loc), loc) == (date, wall).
func ToWallTime(instant time.Time, loc *time.Location) (time.Time, types.WallTime) {
	return types.WallTimeOf(instant, loc)
}

// DayBounds возвращает границы календарного дня date в зоне loc как
// полуоткрытый интервал [start, end) в UTC.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}
