package usecase

import (
	"context"
	"errors"
	"strings"

	"braindump/internal/model"
	"braindump/internal/user"
	"braindump/internal/user/repository"
)

const logPrefix = "internal.user.usecase"

// ResolveDevice maps the id the shortcut sent to a full user record. The
// shortcut sometimes sends the phone number instead of the device id, and
// Israeli numbers often arrive with the leading zero stripped, so the
// lookup tries device id first and then a repaired phone number.
func (uc *implUseCase) ResolveDevice(ctx context.Context, deviceID string) (*model.User, error) {
	u, err := uc.repo.GetByDevice(ctx, deviceID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	lookupID := deviceID
	if looksLikeMissingZeroPhone(deviceID) {
		lookupID = "0" + deviceID
		uc.l.Infof(ctx, "%s.ResolveDevice: id %q looks like a missing-zero phone, trying %q", logPrefix, deviceID, lookupID)
	}

	u, err = uc.repo.GetByUserID(ctx, lookupID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// VerifyDevice reports whether the device maps to a registered user with
// calendar access. Lookup errors read as unverified.
func (uc *implUseCase) VerifyDevice(ctx context.Context, deviceID string) bool {
	u, err := uc.ResolveDevice(ctx, deviceID)
	if err != nil {
		return false
	}
	return u.CalendarEnabled
}

func (uc *implUseCase) GetUser(ctx context.Context, userID string) (*model.User, error) {
	u, err := uc.repo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, user.ErrNotFound
	}
	return u, err
}

func (uc *implUseCase) LookupEmail(ctx context.Context, userID string) (string, error) {
	u, err := uc.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.Email == "" {
		return "", user.ErrNoEmail
	}
	return u.Email, nil
}

// Register verifies real calendar access before anything is stored: a user
// record with calendar_enabled but an unshared calendar would fail on every
// event later.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (*model.User, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, user.ErrMissingPhone
	}

	if !uc.verifier.VerifyAccess(ctx, input.Email) {
		uc.l.Warnf(ctx, "%s.Register: calendar verification FAILED for %s", logPrefix, input.Email)
		return nil, user.ErrCalendarInaccessible
	}

	u := model.User{
		UserID:          phone,
		DeviceID:        input.DeviceID,
		Email:           input.Email,
		CalendarEnabled: input.CalendarEnabled,
	}
	if err := uc.repo.Upsert(ctx, u); err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "%s.Register: registration completed and verified for %s (device %s)", logPrefix, u.UserID, u.DeviceID)
	return &u, nil
}

// looksLikeMissingZeroPhone matches 9-digit ids starting with 5, the shape
// of an Israeli mobile number whose leading zero was dropped by the
// shortcut treating it as an integer.
func looksLikeMissingZeroPhone(id string) bool {
	if len(id) != 9 || id[0] != '5' {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
