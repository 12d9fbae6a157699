package create_reservation

import (
	"fmt"
	"time"
)

// maxNumberSuffix верхняя граница случайного суффикса номера (не включительно)
const maxNumberSuffix = 1000

// GenerateNumber формирует номер бронирования PREFIX-YYYYMMDD-NNN
func GenerateNumber(prefix string, date time.Time, suffix int) string {
	return fmt.Sprintf("%s-%s-%03d", prefix, date.Format("20060102"), suffix%maxNumberSuffix)
}
