package featured

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DaysRemaining возвращает количество оставшихся дней, округляя вверх.
// Для истёкших записей возвращает 0.
func DaysRemaining(endDate, now time.Time) int {
	left := endDate.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(float64(left) / float64(day)))
}

// IsAllowedDuration проверяет что срок продвижения из списка 7/15/30 дней
func IsAllowedDuration(days int) bool {
	for _, d := range AllowedDurations {
		if d == days {
			return true
		}
	}
	return false
}
