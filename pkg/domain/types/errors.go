package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	ErrMissingCredential      = goerr.New("missing credential")
	ErrMissingOwner           = goerr.New("missing owner")
	ErrUnsupportedGranularity = goerr.New("unsupported commit count granularity")

	ErrRemoteListing     = goerr.New("remote listing failure")
	ErrGitOperation      = goerr.New("git operation failure")
	ErrSearch            = goerr.New("search failure")
	ErrInconsistentState = goerr.New("inconsistent state")
)
