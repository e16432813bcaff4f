package engine

import (
	"math/rand/v2"
)

// ticketIDAlphabet is the 62-symbol alphabet ticket ids draw from.
const ticketIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ticketIDLength is the length of a ticket id. At 62^10 the chance of a
// collision within one draw's worth of tickets is negligible, so ids are not
// checked against previously issued ones.
const ticketIDLength = 10

// NewTicketID returns a fresh random ticket identifier.
func NewTicketID() string {
	id := make([]byte, ticketIDLength)
	for i := range id {
		id[i] = ticketIDAlphabet[rand.IntN(len(ticketIDAlphabet))]
	}
	return string(id)
}
