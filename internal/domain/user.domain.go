package domain

import "time"

// User is the persisted identity record. Email and phone are pointers so
// the sparse unique indexes only apply when the field is actually set.
type User struct {
	UserID       int64     `bson:"user_id" json:"userID"`
	UserName     string    `bson:"user_name" json:"name"`
	Email        *string   `bson:"email,omitempty" json:"email,omitempty"`
	Phone        *string   `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name  *string
	Email *string
	Phone *string
}
