package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold. New accounts always start as customers; only an
// admin can move a user to another role.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether the address has the expected shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// User represents an account. The password field holds the bcrypt hash and
// never serializes to JSON.
type User struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Username  string              `bson:"username" json:"username"`
	Email     string              `bson:"email" json:"email"`
	Password  string              `bson:"password" json:"-"`
	Role      string              `bson:"role" json:"role"`
	Cart      *primitive.ObjectID `bson:"cart,omitempty" json:"cart,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the slice of a user embedded in populated responses.
type UserSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
}

// Summary returns the embeddable view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
