package domain

import "time"

// WaitlistEntry is a single Ringer waitlist signup.
type WaitlistEntry struct {
	Email     string
	CreatedAt time.Time
}
