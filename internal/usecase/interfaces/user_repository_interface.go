package interfaces

import (
	"context"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
)

// IUserRepository abstracts persistence for the User placeholder entity.
//
// Username uniqueness is not enforced at this layer: duplicate usernames
// across calls succeed unless the backing store itself rejects them, and
// GetByUsername returns an arbitrary-but-stable match.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}
