package validators

import "testing"

func TestDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email  string
		want   string
		wantOK bool
	}{
		{email: "asha@Example.com", want: "example.com", wantOK: true},
		{email: "asha@clinic.co.in", want: "clinic.co.in", wantOK: true},
		{email: "asha@", wantOK: false},
		{email: "not-an-email", wantOK: false},
		{email: "Asha <asha@example.com>", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := Domain(tc.email)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("Domain(%q) = %q, %v; want %q, %v", tc.email, got, ok, tc.want, tc.wantOK)
		}
	}
}
