// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// Credentials holds the username and plaintext password submitted through the
// sign-up or sign-in form. The value lives only for the duration of a request.
type Credentials struct {
	Username string
	Password string
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]. Only the
// username is emitted so that passwords never reach the logs.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username)
}
