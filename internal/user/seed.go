package user

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SeedAccount describes an account created by the seeder.
type SeedAccount struct {
	Username string
	Password string
	Name     string
	Role     Role
	Class    string
}

// DefaultAccounts is the stock account set the school starts with.
func DefaultAccounts() []SeedAccount {
	return []SeedAccount{
		{Username: "admin", Password: "admin123", Name: "Administrator", Role: RoleAdmin},
		{Username: "guru1", Password: "teacher123", Name: "Bapak Andi Saputra", Role: RoleTeacher},
		{Username: "siswa1", Password: "student123", Name: "Ahmad Rizki", Role: RoleStudent, Class: "Kelas 1"},
		{Username: "siswa2", Password: "student123", Name: "Siti Aminah", Role: RoleStudent, Class: "Kelas 1"},
		{Username: "siswa3", Password: "student123", Name: "Budi Santoso", Role: RoleStudent, Class: "Kelas 2"},
		{Username: "siswa4", Password: "student123", Name: "Dewi Sartika", Role: RoleStudent, Class: "Kelas 2"},
		{Username: "siswa5", Password: "student123", Name: "Fajar Nugraha", Role: RoleStudent, Class: "Kelas 3"},
	}
}

// Seed inserts the given accounts, skipping usernames that already exist.
// It returns the number of accounts actually created.
func (r *Repository) Seed(ctx context.Context, accounts []SeedAccount) (int, error) {
	q := r.db.Rebind(`
		INSERT INTO users (username, password_hash, name, role, class, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (username) DO NOTHING
	`)
	created := 0
	for _, sa := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(sa.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, err
		}
		var class *string
		if sa.Class != "" {
			class = &sa.Class
		}
		res, err := r.db.ExecContext(ctx, q, sa.Username, string(hash), sa.Name, sa.Role, class, time.Now().UTC())
		if err != nil {
			return created, err
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			created++
		}
	}
	return created, nil
}
