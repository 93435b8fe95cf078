package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"safeindiatransport/models"
)

const (
	colBilties     = "bilties"
	colParties     = "parties"
	colUsers       = "users"
	colPublicLinks = "biltyPublicLinks"
)

type MongoBiltyRepo struct {
	DB *mongo.Database
}

func NewMongoBiltyRepo(db *mongo.Database) *MongoBiltyRepo {
	return &MongoBiltyRepo{DB: db}
}

func (r *MongoBiltyRepo) Create(ctx context.Context, input *models.NewBiltyInput) (*models.Bilty, error) {
	bilty, err := buildNewBilty(input)
	if err != nil {
		return nil, err
	}
	bilty.ID = uuid.NewString()

	if _, err := r.DB.Collection(colBilties).InsertOne(ctx, bilty); err != nil {
		return nil, err
	}
	return bilty, nil
}

func (r *MongoBiltyRepo) GetByID(ctx context.Context, id string) (*models.Bilty, error) {
	var raw bson.M
	err := r.DB.Collection(colBilties).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.populateParties(ctx, decodeBilty(raw)), nil
}

func (r *MongoBiltyRepo) List(ctx context.Context) ([]*models.Bilty, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.DB.Collection(colBilties).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeBilties(ctx, cur)
}

func (r *MongoBiltyRepo) ListByConsignee(ctx context.Context, partyID string) ([]*models.Bilty, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.DB.Collection(colBilties).Find(ctx, bson.M{"consigneeId": partyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeBilties(ctx, cur)
}

func (r *MongoBiltyRepo) Update(ctx context.Context, id string, fields *models.EditableBiltyFields) (*models.Bilty, error) {
	bilty, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bilty == nil {
		return nil, models.ErrNotFound
	}

	if err := applyEdit(bilty, fields); err != nil {
		return nil, err
	}

	if _, err := r.DB.Collection(colBilties).ReplaceOne(ctx, bson.M{"_id": id}, bilty); err != nil {
		return nil, err
	}
	return bilty, nil
}

func (r *MongoBiltyRepo) UpdateStatus(ctx context.Context, id, status string, note, location *string) (*models.Bilty, error) {
	bilty, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bilty == nil {
		return nil, models.ErrNotFound
	}

	if err := applyTransition(bilty, status, note, location); err != nil {
		return nil, err
	}

	_, err = r.DB.Collection(colBilties).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":        bilty.Status,
		"statusHistory": bilty.StatusHistory,
		"updatedAt":     bilty.UpdatedAt,
	}})
	if err != nil {
		return nil, err
	}
	return bilty, nil
}

func (r *MongoBiltyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.Collection(colBilties).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	// Orphaned share links would resolve to nothing; drop them with the bilty.
	_, _ = r.DB.Collection(colPublicLinks).DeleteMany(ctx, bson.M{"biltyId": id})
	return nil
}

func (r *MongoBiltyRepo) EnsurePublicLink(ctx context.Context, biltyID string) (*models.PublicLink, error) {
	bilty, err := r.GetByID(ctx, biltyID)
	if err != nil {
		return nil, err
	}
	if bilty == nil {
		return nil, models.ErrNotFound
	}

	if bilty.PublicShareID != nil && *bilty.PublicShareID != "" {
		return &models.PublicLink{PublicID: *bilty.PublicShareID, BiltyID: biltyID}, nil
	}

	link := &models.PublicLink{
		PublicID:  uuid.NewString(),
		BiltyID:   biltyID,
		CreatedAt: time.Now().UnixMilli(),
	}
	if _, err := r.DB.Collection(colPublicLinks).InsertOne(ctx, link); err != nil {
		return nil, err
	}

	_, err = r.DB.Collection(colBilties).UpdateOne(ctx, bson.M{"_id": biltyID},
		bson.M{"$set": bson.M{"publicShareId": link.PublicID}})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (r *MongoBiltyRepo) ResolvePublicLink(ctx context.Context, publicID string) (*models.Bilty, error) {
	var link models.PublicLink
	err := r.DB.Collection(colPublicLinks).FindOne(ctx, bson.M{"_id": publicID}).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, link.BiltyID)
}

func decodeBilties(ctx context.Context, cur *mongo.Cursor) ([]*models.Bilty, error) {
	var out []*models.Bilty
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		out = append(out, decodeBilty(raw))
	}
	return out, cur.Err()
}

// populateParties resolves the consignor/consignee references for detail
// views. A dangling reference leaves the pointer nil rather than failing.
func (r *MongoBiltyRepo) populateParties(ctx context.Context, b *models.Bilty) *models.Bilty {
	if b.ConsignorID != "" {
		var p models.Party
		if err := r.DB.Collection(colParties).FindOne(ctx, bson.M{"_id": b.ConsignorID}).Decode(&p); err == nil {
			b.Consignor = &p
		}
	}
	if b.ConsigneeID != "" {
		var p models.Party
		if err := r.DB.Collection(colParties).FindOne(ctx, bson.M{"_id": b.ConsigneeID}).Decode(&p); err == nil {
			b.Consignee = &p
		}
	}
	return b
}
