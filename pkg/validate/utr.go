package validate

// IsUTR reports whether s looks like a UPI transaction reference. Banks emit
// 12-digit UTRs but apps surface longer alphanumeric ids, so the check only
// rejects obvious garbage; the actual proof of payment is human judgment.
func IsUTR(s string) bool {
	if len(s) < 8 || len(s) > 32 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
