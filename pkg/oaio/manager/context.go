package manager

import (
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/google/uuid"
)

// Context carries state that should persist between related calls to a
// manager. It is created once per adapter reset and reused until the next.
type Context struct {
	ID     string
	Locale *types.TraitsData
}

func newContext() *Context {
	return &Context{
		ID:     uuid.NewString(),
		Locale: types.NewTraitsData(),
	}
}
