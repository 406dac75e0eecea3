package ethereum

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// RevertError is a contract revert whose custom error was recognised. Code
// is the namespaced error name, e.g. CrowdFunding__NotCreator.
type RevertError struct {
	Code string
	Err  error
}

func (e *RevertError) Error() string {
	return "execution reverted: " + e.Code
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

// decodeRevert looks for revert data on err and names the custom error by
// its selector. Plain Error(string) reverts get their reason appended.
// Errors without revert data are returned unchanged.
func decodeRevert(err error, abis ...abi.ABI) error {
	var de rpc.DataError
	if !errors.As(err, &de) {
		return err
	}
	hex, ok := de.ErrorData().(string)
	if !ok {
		return err
	}
	data, decErr := hexutil.Decode(hex)
	if decErr != nil || len(data) < 4 {
		return err
	}
	for _, a := range abis {
		for name, e := range a.Errors {
			if bytes.Equal(e.ID[:4], data[:4]) {
				return &RevertError{Code: name, Err: err}
			}
		}
	}
	if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
		return &RevertError{Code: reason, Err: err}
	}
	return err
}
