package models

type Vehicle struct {
	ID            string   `json:"id" bson:"_id,omitempty" db:"id"`
	VehicleNumber string   `json:"vehicleNumber" bson:"vehicleNumber" db:"vehicle_number"`
	Type          *string  `json:"type,omitempty" bson:"type,omitempty" db:"type"`
	CapacityKg    *float64 `json:"capacityKg,omitempty" bson:"capacityKg,omitempty" db:"capacity_kg"`
	OwnerName     *string  `json:"ownerName,omitempty" bson:"ownerName,omitempty" db:"owner_name"`
	IsActive      bool     `json:"isActive" bson:"isActive" db:"is_active"`
}
