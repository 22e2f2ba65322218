package service

import (
	"net/http"

	commonerrors "github.com/mkravets/job-portal/backend/internal/common/errors"
)

var (
	ErrAllFieldsRequired = commonerrors.NewDomainError(
		"ALL_FIELDS_REQUIRED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"All fields are required",
	)

	ErrPasswordTooShort = commonerrors.NewDomainError(
		"PASSWORD_TOO_SHORT",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Password must be at least 6 characters",
	)

	// The email conflict answers 400 rather than 409. Registered
	// clients key off the message, so the status stays as-is.
	ErrEmailTaken = commonerrors.NewDomainError(
		"EMAIL_TAKEN",
		commonerrors.CategoryConflict,
		http.StatusBadRequest,
		"User already exists with this email",
	)

	ErrEmailPasswordRequired = commonerrors.NewDomainError(
		"EMAIL_PASSWORD_REQUIRED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Email and password are required",
	)

	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid credentials",
	)
)
