package models

// User struct matches the document in MongoDB.
// Password carries the bcrypt hash and is never serialized to JSON.
type User struct {
	Email        string `bson:"email" json:"email"`
	Name         string `bson:"name" json:"name"`
	Password     string `bson:"password" json:"-"`
	Role         string `bson:"role" json:"role"` // "chairman", "employee", "warehouse", "admin"
	Organisation string `bson:"organisation" json:"organisation"`
	Status       string `bson:"status" json:"status"` // "active", "inactive"
}
