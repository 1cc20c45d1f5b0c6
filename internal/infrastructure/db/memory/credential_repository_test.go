package memory

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

func TestCredentialRepository_FindByUsername(t *testing.T) {
	repo, err := NewCredentialRepository(domain.DemoAccounts, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if repo.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", repo.Len())
	}

	for _, name := range []string{"seller1", "SELLER1", "Seller1"} {
		cred, err := repo.FindByUsername(context.Background(), name)
		if err != nil {
			t.Fatalf("find %s: %v", name, err)
		}
		if cred.Username != "seller1" || cred.FullName != "Bob Smith" || cred.Role != domain.RoleSeller {
			t.Fatalf("unexpected record: %+v", cred)
		}
		if cred.PasswordHash == "pass123" {
			t.Fatalf("expected password to be hashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("pass123")); err != nil {
			t.Fatalf("hash does not match password: %v", err)
		}
	}
}

func TestCredentialRepository_NotFound(t *testing.T) {
	repo, err := NewCredentialRepository(domain.DemoAccounts, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := repo.FindByUsername(context.Background(), "nobody"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCredentialRepository_RecordsAreCopies(t *testing.T) {
	repo, err := NewCredentialRepository(domain.DemoAccounts, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	cred, _ := repo.FindByUsername(context.Background(), "admin1")
	cred.Role = domain.RoleBuyer

	again, _ := repo.FindByUsername(context.Background(), "admin1")
	if again.Role != domain.RoleAdmin {
		t.Fatalf("seeded record was mutated: %+v", again)
	}
}

func TestCredentialRepository_DuplicateSeed(t *testing.T) {
	accounts := []domain.Account{
		{Username: "dup", Password: "a"},
		{Username: "DUP", Password: "b"},
	}
	if _, err := NewCredentialRepository(accounts, bcrypt.MinCost); err == nil {
		t.Fatalf("expected duplicate username error")
	}
}
