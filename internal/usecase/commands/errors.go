package commands

import (
	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/errs"
)

// passthrough are the marks that already carry a meaning for the caller.
var passthrough = []error{
	errs.ErrDomainValidation,
	errs.ErrInvalidFormat,
	errs.ErrInvalidTransition,
	errs.ErrReservationConflict,
	errs.ErrReservationNotFound,
	errs.ErrCourtNotFound,
	errs.ErrScheduleNotFound,
	errs.ErrUserNotFound,
	errs.ErrReferenceNotFound,
	errs.ErrEntityInUse,
}

// translate maps repository error kinds onto use-case sentinels. notFound is
// the sentinel for the entity the command addresses.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err, passthrough...) {
		return err
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrReservationConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrReferenceNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

// translateDelete treats a foreign key violation as the row still being referenced.
func translateDelete(err error, notFound error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, errs.ErrEntityInUse)
	}
	return translate(err, notFound)
}
