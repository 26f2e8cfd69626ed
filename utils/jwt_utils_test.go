package utils

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("uid-1", "owner@example.com", "Owner", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UID != "uid-1" || claims.Email != "owner@example.com" || claims.Name != "Owner" || !claims.EmailVerified {
		t.Fatalf("claims = %+v", claims)
	}

	email, err := GetEmailFromToken(token)
	if err != nil {
		t.Fatalf("GetEmailFromToken: %v", err)
	}
	if email != "owner@example.com" {
		t.Fatalf("email = %q, want owner@example.com", email)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateToken("uid-1", "owner@example.com", "Owner", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := ValidateToken(token); err == nil {
		t.Fatalf("expected error for token signed with a different secret")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("uid-1", "owner@example.com", "Owner", false); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}
