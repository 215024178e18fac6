package enums

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input  string
		want   Role
		wantOK bool
	}{
		{"student", RoleStudent, true},
		{"admin", RoleAdmin, true},
		{"superuser", "", false},
		{"Admin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range []ApplicationStatus{
		StatusPending, StatusSubmitted, StatusApproved, StatusRejected, StatusCorrection,
	} {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false", s)
		}
	}
	for _, s := range []ApplicationStatus{"", "archived", "PENDING"} {
		if s.Valid() {
			t.Errorf("%q.Valid() = true, want false", s)
		}
	}
}

func TestApplicationStatusEditable(t *testing.T) {
	editable := map[ApplicationStatus]bool{
		StatusPending:    true,
		StatusCorrection: true,
		StatusSubmitted:  false,
		StatusApproved:   false,
		StatusRejected:   false,
	}
	for status, want := range editable {
		if got := status.Editable(); got != want {
			t.Errorf("%s.Editable() = %v, want %v", status, got, want)
		}
	}
}
