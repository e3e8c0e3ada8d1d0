package mysql

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"reviewboard/internal/domain"
)

// mapErr translates driver errors into domain sentinels so nothing above the
// repo ever inspects a MySQL error number.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1062: // ER_DUP_ENTRY
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		case 3819: // ER_CHECK_CONSTRAINT_VIOLATED
			return fmt.Errorf("%w: %v", domain.ErrInvalid, err)
		}
	}
	return err
}
