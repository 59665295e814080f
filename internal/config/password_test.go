package config

import (
	"os"
	"strings"
	"testing"
)

func TestNewPasswordConfig_CostParsing(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		wantCost int
		wantErr  bool
	}{
		{name: "unset uses default", cost: "", wantCost: 12},
		{name: "minimum cost", cost: "10", wantCost: 10},
		{name: "maximum cost", cost: "14", wantCost: 14},
		{name: "below minimum", cost: "9", wantErr: true},
		{name: "above maximum", cost: "15", wantErr: true},
		{name: "negative", cost: "-5", wantErr: true},
		{name: "zero", cost: "0", wantErr: true},
		{name: "non-numeric", cost: "abc", wantErr: true},
		{name: "float", cost: "12.5", wantErr: true},
		{name: "whitespace not trimmed", cost: "  12  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			if tt.cost == "" {
				os.Unsetenv("BCRYPT_COST")
			}

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewPasswordConfig() = %+v, want error for cost %q", cfg, tt.cost)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPasswordConfig() error = %v", err)
			}
			if cfg.BcryptCost != tt.wantCost {
				t.Errorf("BcryptCost = %d, want %d", cfg.BcryptCost, tt.wantCost)
			}
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	password := "correct-horse-battery"
	hash, err := cfg.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" || hash == password {
		t.Fatalf("HashPassword() = %q, want a bcrypt hash", hash)
	}

	// Salted, so the same input never repeats.
	hash2, err := cfg.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password should differ")
	}

	if !cfg.VerifyPassword(password, hash) {
		t.Error("VerifyPassword() should accept the correct password")
	}
	if cfg.VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword() should reject a wrong password")
	}
	if cfg.VerifyPassword(password, "") {
		t.Error("VerifyPassword() should reject an empty hash")
	}
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "rotation-one"}
	plain := &PasswordConfig{BcryptCost: 10}

	password := "correct-horse-battery"
	hash, err := peppered.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !peppered.VerifyPassword(password, hash) {
		t.Error("VerifyPassword() should accept the password with the original pepper")
	}
	if plain.VerifyPassword(password, hash) {
		t.Error("hash made with a pepper must not verify without it")
	}

	rotated := &PasswordConfig{BcryptCost: 10, Pepper: "rotation-two"}
	if rotated.VerifyPassword(password, hash) {
		t.Error("hash must not verify after the pepper rotates")
	}
}

func TestPasswordConfig_PepperFromEnv(t *testing.T) {
	t.Setenv("PASSWORD_PEPPER", "env-pepper")

	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}
	if cfg.Pepper != "env-pepper" {
		t.Errorf("Pepper = %q, want %q", cfg.Pepper, "env-pepper")
	}
}

func TestPasswordConfig_BcryptLengthLimit(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	// bcrypt accepts at most 72 bytes of password plus pepper.
	atLimit := strings.Repeat("a", 72)
	hash, err := cfg.HashPassword(atLimit)
	if err != nil {
		t.Fatalf("HashPassword() at 72 bytes error = %v", err)
	}
	if !cfg.VerifyPassword(atLimit, hash) {
		t.Error("VerifyPassword() should accept a 72-byte password")
	}

	over := strings.Repeat("a", 73)
	if _, err := cfg.HashPassword(over); err == nil {
		t.Error("HashPassword() should error past 72 bytes, not truncate")
	}

	// A long pepper counts against the same limit.
	longPepper := &PasswordConfig{BcryptCost: 10, Pepper: strings.Repeat("p", 64)}
	if _, err := longPepper.HashPassword("test12345"); err == nil {
		t.Error("HashPassword() should error when pepper plus password exceeds 72 bytes")
	}
}

func TestPasswordConfig_MalformedHashes(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	for _, malformed := range []string{
		"not-a-hash",
		"$2a$12$invalid",
		"invalid$format",
	} {
		if cfg.VerifyPassword("test", malformed) {
			t.Errorf("VerifyPassword() accepted malformed hash %q", malformed)
		}
	}
}

func BenchmarkHashPassword(b *testing.B) {
	cfg := &PasswordConfig{BcryptCost: 10}
	for i := 0; i < b.N; i++ {
		_, _ = cfg.HashPassword("benchmark-password-123")
	}
}

func BenchmarkVerifyPassword(b *testing.B) {
	cfg := &PasswordConfig{BcryptCost: 10}
	hash, _ := cfg.HashPassword("benchmark-password-123")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.VerifyPassword("benchmark-password-123", hash)
	}
}
