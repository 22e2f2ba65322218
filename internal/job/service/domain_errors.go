package service

import (
	"net/http"

	commonerrors "github.com/mkravets/job-portal/backend/internal/common/errors"
)

var (
	ErrJobFieldsRequired = commonerrors.NewDomainError(
		"JOB_FIELDS_REQUIRED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Title, company, description, and location are required",
	)

	ErrJobNotFound = commonerrors.NewDomainError(
		"JOB_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusNotFound,
		"Job not found",
	)

	ErrNotJobOwnerEdit = commonerrors.NewDomainError(
		"NOT_JOB_OWNER_EDIT",
		commonerrors.CategoryForbidden,
		http.StatusForbidden,
		"Not authorized to edit this job",
	)

	ErrNotJobOwnerDelete = commonerrors.NewDomainError(
		"NOT_JOB_OWNER_DELETE",
		commonerrors.CategoryForbidden,
		http.StatusForbidden,
		"Not authorized to delete this job",
	)
)
