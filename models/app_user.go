package models

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type AppUser struct {
	ID        string  `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string  `json:"name" bson:"name" db:"name"`
	Email     string  `json:"email" bson:"email" db:"email"`
	Phone     *string `json:"phone,omitempty" bson:"phone,omitempty" db:"phone"`
	Role      string  `json:"role" bson:"role" db:"role"`
	PartyID   *string `json:"partyId,omitempty" bson:"partyId,omitempty" db:"party_id"`
	Password  string  `json:"password,omitempty" bson:"password" db:"password_hash"`
	IsActive  bool    `json:"isActive" bson:"isActive" db:"is_active"`
	CreatedAt int64   `json:"createdAt" bson:"createdAt" db:"created_at"`
}
