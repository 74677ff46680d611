// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns reports and vitals and may be named
// as the grantee of a share.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address used to log in and to be found when a
	// report owner grants access.
	Email string `json:"email"`

	// Password carries the plain-text password of a register or login
	// request. It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u stripped of every credential field, suitable
// for JSON responses.
func (u User) Public() User {
	return User{UserID: u.UserID, Name: u.Name, Email: u.Email}
}
