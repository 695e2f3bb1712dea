package domain

import "context"

// GuardianContact is what the sender needs to reach a santri's guardian.
type GuardianContact struct {
	StudentName   string
	GuardianName  string
	Telephone     string
	Email         *string
	GuardianIsMan bool
}

// SenderRepo delivers guardian notifications over WhatsApp and email. Send
// failures are logged by the caller, never surfaced to the triggering write.
type SenderRepo interface {
	SendAbsenceAlert(ctx context.Context, studentID int) error
	SendCredentials(ctx context.Context, studentID int, creds *VerifiedCredentials) error
}
