package billrun

import "math/rand"

// OrderStrategy decides the processing order of companies within a run. The
// ledger's uniqueness and idempotence guarantees hold under any order; the
// strategy only controls how sequence numbers distribute across companies.
type OrderStrategy func(companies []string) []string

// IdentityOrder processes companies as given.
func IdentityOrder(companies []string) []string {
	return companies
}

// ShuffleOrder randomizes the processing order with the given source, so a
// sequential invoice number does not reveal the position of a company in the
// configured list. Tests inject a seeded source to fix the order.
func ShuffleOrder(r *rand.Rand) OrderStrategy {
	return func(companies []string) []string {
		shuffled := make([]string, len(companies))
		copy(shuffled, companies)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return shuffled
	}
}
