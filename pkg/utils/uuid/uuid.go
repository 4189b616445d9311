package uuid

import (
	gouuid "github.com/nu7hatch/gouuid"
)

// New returns a new random version 4 uuid as string in
// XXXXXXXX-XXXX- ... format.
func New() string {
	u, err := gouuid.NewV4()
	if err != nil {
		panic("cannot generate uuid using rand")
	}
	return u.String()
}
