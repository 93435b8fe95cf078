package models

// PublicLink maps an opaque share id to a bilty, so an unauthenticated caller
// can resolve a consignment without knowing its internal id.
type PublicLink struct {
	PublicID  string `json:"publicId" bson:"_id,omitempty" db:"public_id"`
	BiltyID   string `json:"biltyId" bson:"biltyId" db:"bilty_id"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt" db:"created_at"`
}
