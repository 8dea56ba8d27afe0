package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrJobNotFound  = errors.New("Job not found")
	ErrNoJobsFound  = errors.New("No jobs found")
)
