package db

import (
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func testSeed() SeedOptions {
	return SeedOptions{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		SampleData:    true,
	}
}

func TestInitDB_SeedsAdminAndSamplesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	// Run initialization twice against the same file.
	for i := 0; i < 2; i++ {
		conn, err := InitDB(path, testSeed())
		if err != nil {
			t.Fatalf("InitDB run %d: %v", i+1, err)
		}
		if err := conn.Close(); err != nil {
			t.Fatalf("close run %d: %v", i+1, err)
		}
	}

	conn, err := InitDB(path, testSeed())
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	var admins int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM users WHERE username = 'admin'`).Scan(&admins); err != nil {
		t.Fatalf("count admins: %v", err)
	}
	if admins != 1 {
		t.Fatalf("expected exactly one admin, got %d", admins)
	}

	var projects int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&projects); err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if projects != len(sampleProjects) {
		t.Fatalf("expected %d seeded projects, got %d", len(sampleProjects), projects)
	}
}

func TestInitDB_AdminPasswordIsHashed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	conn, err := InitDB(path, testSeed())
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	var hash string
	if err := conn.QueryRow(`SELECT password_hash FROM users WHERE username = 'admin'`).Scan(&hash); err != nil {
		t.Fatalf("select admin hash: %v", err)
	}
	if hash == "admin123" {
		t.Fatalf("password stored in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")); err != nil {
		t.Fatalf("stored hash does not verify against default password: %v", err)
	}
}

func TestInitDB_NoSamplesWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	seed := testSeed()
	seed.SampleData = false
	conn, err := InitDB(path, seed)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	var projects int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&projects); err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if projects != 0 {
		t.Fatalf("expected empty projects table, got %d rows", projects)
	}
}
