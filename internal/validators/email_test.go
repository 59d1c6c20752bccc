package validators

import "testing"

// malformed addresses must be rejected before any DNS traffic
func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	for _, email := range []string{
		"",
		"coach",
		"coach@",
		"@fitreni.hu",
		"@",
	} {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true, want false", email)
		}
	}
}
