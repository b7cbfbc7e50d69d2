package service

import "time"

// clock returns now() when set, else the wall clock in UTC.
func clock(now func() time.Time) time.Time {
	if now != nil {
		return now()
	}
	return time.Now().UTC()
}
