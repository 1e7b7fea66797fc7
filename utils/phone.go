package utils

// NormalizePhone strips every non-digit character from a notification phone
// number and caps it at ten digits, matching the platform's input rules.
func NormalizePhone(raw string) string {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw) && len(digits) < 10; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	return string(digits)
}
