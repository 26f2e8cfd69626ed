package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Creator is the identity snapshot of the user who created a board.
// The creator always resolves to the admin role, even when absent
// from the collaborator list.
type Creator struct {
	UID   string `bson:"uid" json:"uid"`
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`
}

type Collaborator struct {
	Email string    `bson:"email" json:"email"`
	Name  string    `bson:"name" json:"name"`
	Role  BoardRole `bson:"role" json:"role"`
}

type Board struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Creator       Creator            `bson:"creator" json:"creator"`
	Collaborators []Collaborator     `bson:"collaborators" json:"collaborators"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
