// Package timezone centralizes time handling in the configured
// application timezone. Reservation date arithmetic (month windows,
// "today or later" cutoffs) must go through this package so that the
// booking calendar matches the house's local calendar, not the server's.
package timezone
