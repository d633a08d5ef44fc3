package ids

import "sync/atomic"

// Sequence hands out process-unique identifiers, one counter per entity kind.
// Ids start at 1 and are never reused while the process runs.
type Sequence struct {
	cards          atomic.Int64
	owners         atomic.Int64
	merchants      atomic.Int64
	authorizations atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) NextCardID() int64 {
	return s.cards.Add(1)
}

func (s *Sequence) NextOwnerID() int64 {
	return s.owners.Add(1)
}

func (s *Sequence) NextMerchantID() int64 {
	return s.merchants.Add(1)
}

func (s *Sequence) NextAuthorizationRequestID() int64 {
	return s.authorizations.Add(1)
}
