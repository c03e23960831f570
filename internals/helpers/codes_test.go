// file: internals/helpers/codes_test.go
package helper

import (
	"fmt"
	"testing"
)

func TestSubjectCodeRe(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"KRJ-2026-ALJ-001", true},
		{"KRJ-2026-AL-001", true},
		{"KRJ-2026-FISKA-999", true},
		{"KRJ-1999-ALJ-001", false}, // tahun di luar 20xx
		{"KRJ-2026-alj-001", false}, // inisial harus kapital
		{"KRJ-2026-A-001", false},   // inisial minimal 2 huruf
		{"KRJ-2026-ALJ-1", false},   // urutan harus 3 digit
		{"XYZ-2026-ALJ-001", false},
		{"KRJ-2026-ALJ-001X", false},
	}
	for _, tt := range tests {
		if got := SubjectCodeRe.MatchString(tt.code); got != tt.want {
			t.Errorf("SubjectCodeRe(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestBranchCodeRe(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"KRJ-2026-JKT-01", true},
		{"KRJ-2026-BDG-99", true},
		{"KRJ-2026-JKT-001", false}, // urutan harus 2 digit
		{"KRJ-2026-jkt-01", false},
		{"KRJ-26-JKT-01", false},
	}
	for _, tt := range tests {
		if got := BranchCodeRe.MatchString(tt.code); got != tt.want {
			t.Errorf("BranchCodeRe(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestGeneratedCodeFormats(t *testing.T) {
	// format yang dihasilkan generator harus lolos regex validasinya sendiri
	for seq := int64(1); seq <= 3; seq++ {
		subject := fmt.Sprintf("KRJ-%d-%s-%03d", 2026, "ALJ", seq)
		if !SubjectCodeRe.MatchString(subject) {
			t.Errorf("generated subject code %q does not match pattern", subject)
		}
		branch := fmt.Sprintf("KRJ-%d-%s-%02d", 2026, "JKT", seq)
		if !BranchCodeRe.MatchString(branch) {
			t.Errorf("generated branch code %q does not match pattern", branch)
		}
	}
}
