package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// timestampLayout matches the zone-less shape of the timestamp columns.
const timestampLayout = "2006-01-02T15:04:05.999999"

// Timestamp is a time.Time that serializes without a timezone suffix, the
// same wire shape the database's timestamp (without time zone) column has.
type Timestamp struct {
	time.Time
}

// MarshalJSON renders the zone-less layout instead of RFC3339
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format(timestampLayout))), nil
}

// UnmarshalJSON parses the zone-less layout into a UTC time
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Scan implements sql.Scanner
func (t *Timestamp) Scan(value interface{}) error {
	v, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
	t.Time = v
	return nil
}

// Value implements driver.Valuer
func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}
