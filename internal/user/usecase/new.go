package usecase

import (
	"braindump/internal/user"
	"braindump/internal/user/repository"
	pkgLog "braindump/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	verifier user.CalendarVerifier
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, verifier user.CalendarVerifier) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		verifier: verifier,
	}
}
