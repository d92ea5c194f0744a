package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers used by [MySQLErrorClassifier].
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	mysqlErrDupEntry        uint16 = 1062
	mysqlErrConCount        uint16 = 1040
	mysqlErrLockWaitTimeout uint16 = 1205
	mysqlErrLockDeadlock    uint16 = 1213
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL and MariaDB.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier] ready for use.
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrDupEntry:
			return Conflict
		case mysqlErrConCount, mysqlErrLockWaitTimeout, mysqlErrLockDeadlock:
			return Unavailable
		default:
			return Unclassified
		}
	}

	if errors.Is(err, mysql.ErrInvalidConn) {
		return Unavailable
	}

	return classifyCommon(err)
}
