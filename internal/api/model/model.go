package model

import "time"

type User struct {
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type JobApplication struct {
	JobID       string    `db:"job_id"`
	OwnerEmail  string    `db:"owner_email"`
	Company     string    `db:"company"`
	Role        string    `db:"role"`
	Status      string    `db:"status"`
	AppliedDate time.Time `db:"applied_date"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
