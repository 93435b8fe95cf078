package models

// Party types. A party can act as consignor, consignee, or both.
const (
	PartyConsignor = "consignor"
	PartyConsignee = "consignee"
	PartyBoth      = "both"
)

// Party is a customer record referenced by bilties. Parties are never
// physically deleted; IsActive=false is the soft-delete marker so old
// bilties keep resolving.
type Party struct {
	ID            string  `json:"id" bson:"_id,omitempty" db:"id"`
	Name          string  `json:"name" bson:"name" db:"name"`
	ContactPerson *string `json:"contactPerson,omitempty" bson:"contactPerson,omitempty" db:"contact_person"`
	Phone         *string `json:"phone,omitempty" bson:"phone,omitempty" db:"phone"`
	Email         *string `json:"email,omitempty" bson:"email,omitempty" db:"email"`
	GSTIN         *string `json:"gstin,omitempty" bson:"gstin,omitempty" db:"gstin"`
	AddressLine1  *string `json:"addressLine1,omitempty" bson:"addressLine1,omitempty" db:"address_line1"`
	AddressLine2  *string `json:"addressLine2,omitempty" bson:"addressLine2,omitempty" db:"address_line2"`
	City          *string `json:"city,omitempty" bson:"city,omitempty" db:"city"`
	State         *string `json:"state,omitempty" bson:"state,omitempty" db:"state"`
	Pincode       *string `json:"pincode,omitempty" bson:"pincode,omitempty" db:"pincode"`
	Type          string  `json:"type" bson:"type" db:"type"`
	IsActive      bool    `json:"isActive" bson:"isActive" db:"is_active"`
	CreatedAt     int64   `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt     int64   `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}

// ValidPartyType reports whether t is one of the known party types.
func ValidPartyType(t string) bool {
	return t == PartyConsignor || t == PartyConsignee || t == PartyBoth
}
