package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer carries identity plus encrypted PII. The ciphertext fields are
// opaque here; decryption goes through the pii collaborator and plaintext is
// never persisted by this core. Customers are soft-deactivated, never deleted.
type Customer struct {
	id                 uuid.UUID
	firstNameEncrypted []byte
	lastNameEncrypted  []byte
	phoneEncrypted     []byte
	active             bool
	createdAt          time.Time
}

func Reconstruct(
	id uuid.UUID,
	firstNameEncrypted, lastNameEncrypted, phoneEncrypted []byte,
	active bool,
	createdAt time.Time,
) *Customer {
	return &Customer{
		id:                 id,
		firstNameEncrypted: firstNameEncrypted,
		lastNameEncrypted:  lastNameEncrypted,
		phoneEncrypted:     phoneEncrypted,
		active:             active,
		createdAt:          createdAt,
	}
}

func (c *Customer) ID() uuid.UUID               { return c.id }
func (c *Customer) FirstNameEncrypted() []byte  { return c.firstNameEncrypted }
func (c *Customer) LastNameEncrypted() []byte   { return c.lastNameEncrypted }
func (c *Customer) PhoneEncrypted() []byte      { return c.phoneEncrypted }
func (c *Customer) IsActive() bool              { return c.active }
func (c *Customer) CreatedAt() time.Time        { return c.createdAt }
