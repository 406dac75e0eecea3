package domain

import "github.com/ethereum/go-ethereum/common"

// Session is the caller's wallet context: the acting account and the
// chain the caller believes it is on. It is passed explicitly to every
// operation that needs it. ChainID zero means the caller did not say.
type Session struct {
	Account common.Address
	ChainID uint64
}

// CheckNetwork returns ErrWrongNetwork when the session names a chain
// other than want.
func (s Session) CheckNetwork(want uint64) error {
	if s.ChainID != 0 && s.ChainID != want {
		return ErrWrongNetwork
	}
	return nil
}
