// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a stored credential record.
//
// Username is the unique, case-sensitive identifier of the account.
// PasswordHash is a bcrypt verifier of the password; plaintext passwords are
// never stored. Accounts are created once on sign-up and never updated.
type Account struct {
	// Username is the unique account identifier, compared byte-for-byte.
	Username string `json:"username"`

	// PasswordHash is the salted one-way hash of the account password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account row was inserted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
