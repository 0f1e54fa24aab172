package identity

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"okiteru-api/internal/iam/domain/model"
)

const ContextKey = "AuthenticatedIdentityKey"

// Identity é o chamador resolvido pelo gate de autenticação na requisição atual.
type Identity struct {
	UserID     uuid.UUID
	ExternalID string
	Email      string
	Role       model.UserRole
}

func (i Identity) IsManager() bool {
	return i.Role == model.RoleManager
}

func Set(c *gin.Context, id *Identity) {
	if id != nil {
		c.Set(ContextKey, id)
	}
}

func Get(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(ContextKey)
	if !exists {
		return nil, false
	}
	id, ok := value.(*Identity)
	if !ok {
		return nil, false
	}
	return id, true
}
