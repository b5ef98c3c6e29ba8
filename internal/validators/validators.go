package validators

import (
	"strings"
	"unicode"
)

// CheckMobile проверяет номер мобильного телефона клиента:
// 11 цифр, первая - единица
func CheckMobile(mobile string) bool {
	// Удаляем все пробелы
	mobile = strings.ReplaceAll(mobile, " ", "")

	if len(mobile) != 11 {
		return false
	}
	if mobile[0] != '1' {
		return false
	}
	for _, r := range mobile {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
