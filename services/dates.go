package services

import (
	"time"

	"gorm.io/datatypes"
)

// StorageLocation must match the loc parameter of the MySQL DSN (main sets it from
// config.DBLocation). The driver converts time arguments into that location before
// formatting them, so calendar days are built there to survive the conversion.
var StorageLocation = time.Local

// storedDate turns a calendar day into the value written to a DATE column.
func storedDate(day time.Time, loc *time.Location) datatypes.Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := day.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, loc))
}
