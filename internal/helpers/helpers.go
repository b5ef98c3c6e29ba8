package helpers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney - денежный формат таблицы: целые суммы без дробной части,
// остальные с одним знаком
func FormatMoney(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return amount.String()
	}
	return amount.StringFixed(1)
}

// FormatDate - короткий формат времени для ячеек таблицы (М-Д ЧЧ:ММ)
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d-%d %02d:%02d", int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// MaskMobile - маскирует середину номера телефона при выводе
func MaskMobile(mobile string) string {
	if len(mobile) != 11 {
		return mobile
	}
	return mobile[:3] + "****" + mobile[7:]
}

// YesNo - булев флаг в ячейке таблицы
func YesNo(flag bool) string {
	if flag {
		return "yes"
	}
	return "no"
}
