package models

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	DefaultSeedCount     = 5
	DefaultAvatarBaseURL = "https://api.adorable.io/avatars"

	seedAvatarSize  = 100
	addedAvatarSize = 285
	avatarVariants  = 100
)

type Contact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type ContactList struct {
	Contacts []Contact `json:"contacts"`
}

// Prepend inserts the contact at the head of the list
func (cl *ContactList) Prepend(contact Contact) {
	cl.Contacts = append([]Contact{contact}, cl.Contacts...)
}

// Remove deletes the first contact with the given id
func (cl *ContactList) Remove(id int64) (Contact, bool) {
	for i, contact := range cl.Contacts {
		if contact.ID == id {
			cl.Contacts = append(cl.Contacts[:i], cl.Contacts[i+1:]...)
			return contact, true
		}
	}
	return Contact{}, false
}

func (cl *ContactList) FindByID(id int64) *Contact {
	for i, contact := range cl.Contacts {
		if contact.ID == id {
			return &cl.Contacts[i]
		}
	}
	return nil
}

func (cl *ContactList) Len() int {
	return len(cl.Contacts)
}

// Clock supplies the wall time used to derive identifiers for new contacts
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ContactGenerator synthesises placeholder contacts
type ContactGenerator struct {
	avatarBaseURL string
	rng           *rand.Rand
	clock         Clock
}

// NewContactGenerator creates a generator. A nil rng uses the global source
// and a nil clock uses the wall clock.
func NewContactGenerator(avatarBaseURL string, rng *rand.Rand, clock Clock) *ContactGenerator {
	if avatarBaseURL == "" {
		avatarBaseURL = DefaultAvatarBaseURL
	}
	if clock == nil {
		clock = systemClock{}
	}

	return &ContactGenerator{
		avatarBaseURL: strings.TrimRight(avatarBaseURL, "/"),
		rng:           rng,
		clock:         clock,
	}
}

// Seed returns count placeholder contacts with ids 0..count-1, highest id first
func (g *ContactGenerator) Seed(count int) []Contact {
	if count < 0 {
		count = 0
	}

	contacts := make([]Contact, count)
	for i := 0; i < count; i++ {
		contacts[count-1-i] = g.placeholder(int64(i), i, seedAvatarSize)
	}
	return contacts
}

// Next builds the contact added to a list currently holding index entries.
// The id is the wall clock in nanoseconds offset by index.
func (g *ContactGenerator) Next(index int) Contact {
	id := g.clock.Now().UnixNano() + int64(index)
	return g.placeholder(id, index, addedAvatarSize)
}

func (g *ContactGenerator) placeholder(id int64, index, avatarSize int) Contact {
	return Contact{
		ID:        id,
		Name:      fmt.Sprintf("Contact %d", index),
		Email:     fmt.Sprintf("email%d@provider.com", index),
		AvatarURL: fmt.Sprintf("%s/%d/%d", g.avatarBaseURL, avatarSize, g.avatarVariant()),
	}
}

func (g *ContactGenerator) avatarVariant() int {
	if g.rng == nil {
		return rand.IntN(avatarVariants)
	}
	return g.rng.IntN(avatarVariants)
}
