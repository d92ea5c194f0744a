// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading the submitted sign-up and sign-in
// forms. Callers can match against them with [errors.Is].
var (
	// ErrInvalidForm is returned when the request body cannot be parsed as a
	// form.
	ErrInvalidForm = errors.New("invalid form submission")

	// ErrMissingFormField is returned when the username or password field is
	// absent from the submitted form. An empty value is not an error.
	ErrMissingFormField = errors.New("username and password fields are required")
)
