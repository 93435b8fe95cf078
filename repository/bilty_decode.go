package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"safeindiatransport/models"
)

// The mobile clients wrote bilty documents with loosely typed fields over
// several app versions, so decoding goes field by field with per-field
// defaults instead of a strict struct decode. A missing or mistyped field
// becomes its zero value; a malformed history entry decodes to a zero entry.

func decodeBilty(raw bson.M) *models.Bilty {
	b := &models.Bilty{
		ID:                 asString(raw["_id"]),
		BiltyNumber:        asString(raw["biltyNumber"]),
		Date:               asInt64(raw["date"]),
		ConsignorID:        asString(raw["consignorId"]),
		ConsigneeID:        asString(raw["consigneeId"]),
		Origin:             asString(raw["origin"]),
		Destination:        asString(raw["destination"]),
		VehicleID:          asStringPtr(raw["vehicleId"]),
		DriverID:           asStringPtr(raw["driverId"]),
		GoodsDescription:   asString(raw["goodsDescription"]),
		NoOfPackages:       int(asInt64(raw["noOfPackages"])),
		TotalWeightKg:      asFloat(raw["totalWeightKg"]),
		FreightAmount:      asFloat(raw["freightAmount"]),
		TotalAmount:        asFloat(raw["totalAmount"]),
		PaymentType:        asString(raw["paymentType"]),
		ExpectedDeliveryAt: asInt64(raw["expectedDeliveryAt"]),
		Status:             asString(raw["status"]),
		PublicShareID:      asStringPtr(raw["publicShareId"]),
		CreatedBy:          asString(raw["createdBy"]),
		CreatedAt:          asInt64(raw["createdAt"]),
		UpdatedAt:          asInt64(raw["updatedAt"]),
		Attachments:        asStringSlice(raw["attachments"]),
	}

	if v, ok := raw["otherCharges"]; ok && v != nil {
		f := asFloat(v)
		b.OtherCharges = &f
	}
	if v, ok := raw["gstAmount"]; ok && v != nil {
		f := asFloat(v)
		b.GSTAmount = &f
	}

	if items, ok := raw["statusHistory"].(bson.A); ok {
		for _, item := range items {
			entry, ok := item.(bson.M)
			if !ok {
				b.StatusHistory = append(b.StatusHistory, models.StatusChange{})
				continue
			}
			b.StatusHistory = append(b.StatusHistory, models.StatusChange{
				Status:    asString(entry["status"]),
				Note:      asStringPtr(entry["note"]),
				Location:  asStringPtr(entry["location"]),
				ChangedAt: asInt64(entry["changedAt"]),
			})
		}
	}

	return b
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asStringPtr(v interface{}) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case primitive.DateTime:
		return int64(n)
	}
	return 0
}

func asStringSlice(v interface{}) []string {
	arr, ok := v.(bson.A)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
