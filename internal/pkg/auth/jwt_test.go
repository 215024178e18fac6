package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "fiftyvillagers.org",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, err := svc.GenerateToken(42, "asha@example.org", enums.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "asha@example.org" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != enums.RoleStudent {
		t.Errorf("Role = %q, want student", claims.Role)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, err := svc.GenerateToken(42, "asha@example.org", enums.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testJWTService(time.Hour).GenerateToken(42, "asha@example.org", enums.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "another-secret", TokenExp: time.Hour})
	if _, err := other.ValidateAndExtractClaims(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenUnknownRole(t *testing.T) {
	svc := testJWTService(time.Hour)

	// A token minted with a role outside the closed enum must be rejected
	// even though its signature is valid.
	token, err := svc.GenerateToken(42, "asha@example.org", enums.Role("superuser"))
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims("not.a.token"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"well formed", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing header", "", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("S3cure!pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword(hash, "S3cure!pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}
