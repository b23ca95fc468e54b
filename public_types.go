package datereg

import "github.com/goyguru/datereg-go/internal/types"

// Public type aliases so SDK consumers can import only the datereg package.
type (
	// Estimation responses
	CreationDate           = types.CreationDate
	CreationDateByUsername = types.CreationDateByUsername

	// Identity record and its nested parts
	Identity     = types.Identity
	UserPhoto    = types.UserPhoto
	UsernameInfo = types.UsernameInfo
)

// Errors re-exported in errors.go
