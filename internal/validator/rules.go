package validator

import "strings"

// EduEmailDomains - домены, с которыми разрешена регистрация студентов.
var EduEmailDomains = []string{".edu", ".ac.uk", ".org"}

// IsEduEmail проверяет, оканчивается ли email на разрешенный учебный домен.
// Вызывается из AuthService: требование действует только для роли STUDENT,
// поэтому оно не выражено тегом на DTO.
func IsEduEmail(email string) bool {
	lower := strings.ToLower(email)
	for _, domain := range EduEmailDomains {
		if strings.HasSuffix(lower, domain) {
			return true
		}
	}
	return false
}
