package database

import (
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/lib/pq"
)

// isTransient reports whether a database error is worth retrying:
// connection-level failures and server shutdown, never constraint or
// programming errors.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.EOF) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		// Class 08: connection exceptions. 57P01: admin shutdown.
		// Class 53: insufficient resources (too many connections).
		if strings.HasPrefix(code, "08") || strings.HasPrefix(code, "53") || code == "57P01" {
			return true
		}
	}

	return false
}
