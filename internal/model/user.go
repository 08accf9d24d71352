package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
)

const UsersCollection = "users"

// Profile holds the public, free-form part of a user document.
type Profile struct {
	Bio    string   `bson:"bio" json:"bio"`
	Avatar string   `bson:"avatar" json:"avatar"`
	Skills []string `bson:"skills" json:"skills"`
}

// User is keyed by the human-readable UserID (STU_nnn / INST_nnn), which is
// distinct from the storage-assigned _id.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Email      string             `bson:"email" json:"email"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Role       UserRole           `bson:"role" json:"role"`
	DateJoined time.Time          `bson:"dateJoined" json:"dateJoined"`
	Profile    Profile            `bson:"profile" json:"profile"`
	IsActive   bool               `bson:"isActive" json:"isActive"`
}
