package salarysettings

import (
	"errors"
	"strings"

	salarysettingserrors "go-apg/internal/salarysettings/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const activeIndexName = "uq_global_salary_settings_active"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarysettingserrors.ErrSettingsNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == activeIndexName {
			return salarysettingserrors.ErrConcurrentActivation
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, activeIndexName) {
		return salarysettingserrors.ErrConcurrentActivation
	}

	return err
}
