package models

// Payment terms for a bilty.
const (
	PaymentToPay      = "to_pay"
	PaymentPaid       = "paid"
	PaymentToBeBilled = "to_be_billed"
)

// StatusChange is one entry in a bilty's append-only status history.
type StatusChange struct {
	Status    string  `json:"status" bson:"status" db:"status"`
	Note      *string `json:"note,omitempty" bson:"note,omitempty" db:"note"`
	Location  *string `json:"location,omitempty" bson:"location,omitempty" db:"location"`
	ChangedAt int64   `json:"changedAt" bson:"changedAt" db:"changed_at"`
}

// Bilty is a consignment note. Timestamps are unix milliseconds, matching
// the document layout the mobile clients already write.
type Bilty struct {
	ID          string `json:"id" bson:"_id,omitempty" db:"id"`
	BiltyNumber string `json:"biltyNumber" bson:"biltyNumber" db:"bilty_number"`
	Date        int64  `json:"date" bson:"date" db:"date"`

	ConsignorID string `json:"consignorId" bson:"consignorId" db:"consignor_id"`
	ConsigneeID string `json:"consigneeId" bson:"consigneeId" db:"consignee_id"`

	Origin      string `json:"origin" bson:"origin" db:"origin"`
	Destination string `json:"destination" bson:"destination" db:"destination"`

	VehicleID *string `json:"vehicleId,omitempty" bson:"vehicleId,omitempty" db:"vehicle_id"`
	DriverID  *string `json:"driverId,omitempty" bson:"driverId,omitempty" db:"driver_id"`

	GoodsDescription string  `json:"goodsDescription" bson:"goodsDescription" db:"goods_description"`
	NoOfPackages     int     `json:"noOfPackages" bson:"noOfPackages" db:"no_of_packages"`
	TotalWeightKg    float64 `json:"totalWeightKg" bson:"totalWeightKg" db:"total_weight_kg"`

	FreightAmount float64  `json:"freightAmount" bson:"freightAmount" db:"freight_amount"`
	OtherCharges  *float64 `json:"otherCharges,omitempty" bson:"otherCharges,omitempty" db:"other_charges"`
	GSTAmount     *float64 `json:"gstAmount,omitempty" bson:"gstAmount,omitempty" db:"gst_amount"`
	TotalAmount   float64  `json:"totalAmount" bson:"totalAmount" db:"total_amount"`
	PaymentType   string   `json:"paymentType" bson:"paymentType" db:"payment_type"`

	// ExpectedDeliveryAt feeds the overdue bucket on the dashboard; zero means
	// no due date was agreed.
	ExpectedDeliveryAt int64 `json:"expectedDeliveryAt,omitempty" bson:"expectedDeliveryAt,omitempty" db:"expected_delivery_at"`

	Status        string         `json:"status" bson:"status" db:"status"`
	StatusHistory []StatusChange `json:"statusHistory" bson:"statusHistory"`

	PublicShareID *string `json:"publicShareId,omitempty" bson:"publicShareId,omitempty" db:"public_share_id"`

	CreatedBy   string   `json:"createdBy" bson:"createdBy" db:"created_by"`
	CreatedAt   int64    `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt   int64    `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
	Attachments []string `json:"attachments" bson:"attachments"`

	// Nested objects for responses (denormalized)
	Consignor *Party `json:"consignor,omitempty" bson:"-"`
	Consignee *Party `json:"consignee,omitempty" bson:"-"`
}

// OtherChargesValue returns the other-charges component, zero when absent.
// Used by the invoice template, which cannot dereference pointers.
func (b *Bilty) OtherChargesValue() float64 {
	if b.OtherCharges == nil {
		return 0
	}
	return *b.OtherCharges
}

// GSTAmountValue returns the GST component, zero when absent.
func (b *Bilty) GSTAmountValue() float64 {
	if b.GSTAmount == nil {
		return 0
	}
	return *b.GSTAmount
}

// NewBiltyInput carries the fields a caller supplies when creating a bilty.
// Number, date, status, history and audit fields are assigned by the repository.
type NewBiltyInput struct {
	ConsignorID        string   `json:"consignorId"`
	ConsigneeID        string   `json:"consigneeId"`
	Origin             string   `json:"origin"`
	Destination        string   `json:"destination"`
	GoodsDescription   string   `json:"goodsDescription"`
	NoOfPackages       int      `json:"noOfPackages"`
	TotalWeightKg      float64  `json:"totalWeightKg"`
	FreightAmount      float64  `json:"freightAmount"`
	OtherCharges       *float64 `json:"otherCharges,omitempty"`
	GSTAmount          *float64 `json:"gstAmount,omitempty"`
	PaymentType        string   `json:"paymentType"`
	VehicleID          *string  `json:"vehicleId,omitempty"`
	DriverID           *string  `json:"driverId,omitempty"`
	ExpectedDeliveryAt int64    `json:"expectedDeliveryAt,omitempty"`
	CreatedBy          string   `json:"createdBy"`
}

// EditableBiltyFields is the full replacement payload for an edit. A status
// value different from the stored one appends a history entry on update.
type EditableBiltyFields struct {
	ConsignorID        string   `json:"consignorId"`
	ConsigneeID        string   `json:"consigneeId"`
	Origin             string   `json:"origin"`
	Destination        string   `json:"destination"`
	GoodsDescription   string   `json:"goodsDescription"`
	NoOfPackages       int      `json:"noOfPackages"`
	TotalWeightKg      float64  `json:"totalWeightKg"`
	FreightAmount      float64  `json:"freightAmount"`
	OtherCharges       *float64 `json:"otherCharges,omitempty"`
	GSTAmount          *float64 `json:"gstAmount,omitempty"`
	PaymentType        string   `json:"paymentType"`
	VehicleID          *string  `json:"vehicleId,omitempty"`
	DriverID           *string  `json:"driverId,omitempty"`
	ExpectedDeliveryAt int64    `json:"expectedDeliveryAt,omitempty"`
	Status             string   `json:"status"`
}
