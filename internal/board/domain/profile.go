package domain

import "time"

type Profile struct {
	ID              string
	Username        string
	DisplayName     string
	Email           string
	PasswordHash    string // argon2 encoded
	EmailConfirmed  bool
	ConfirmSecret   string  // HOTP secret (base32 encoded), set at registration
	ConfirmCounter  int64   // HOTP counter, bumped each time a code is issued
	PendingCodeHash *string // fingerprint of the current confirmation code (nil once confirmed)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
