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

type MongoPartyRepo struct {
	DB *mongo.Database
}

func NewMongoPartyRepo(db *mongo.Database) *MongoPartyRepo {
	return &MongoPartyRepo{DB: db}
}

func (r *MongoPartyRepo) Create(ctx context.Context, party *models.Party) error {
	if err := prepareParty(party); err != nil {
		return err
	}
	party.ID = uuid.NewString()

	_, err := r.DB.Collection(colParties).InsertOne(ctx, party)
	return err
}

func (r *MongoPartyRepo) GetByID(ctx context.Context, id string) (*models.Party, error) {
	var party models.Party
	err := r.DB.Collection(colParties).FindOne(ctx, bson.M{"_id": id}).Decode(&party)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &party, nil
}

func (r *MongoPartyRepo) List(ctx context.Context, onlyActive bool) ([]*models.Party, error) {
	filter := bson.M{}
	if onlyActive {
		filter["isActive"] = true
	}
	return r.find(ctx, filter)
}

// ListCustomers returns active parties that can receive goods, i.e. the
// customer list shown on the dashboard.
func (r *MongoPartyRepo) ListCustomers(ctx context.Context) ([]*models.Party, error) {
	filter := bson.M{
		"isActive": true,
		"type":     bson.M{"$in": bson.A{models.PartyConsignee, models.PartyBoth}},
	}
	return r.find(ctx, filter)
}

func (r *MongoPartyRepo) find(ctx context.Context, filter bson.M) ([]*models.Party, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.DB.Collection(colParties).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Party
	for cur.Next(ctx) {
		var p models.Party
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoPartyRepo) Update(ctx context.Context, id string, party *models.Party) (*models.Party, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.ErrNotFound
	}

	if party.Name == "" {
		return nil, models.NewValidationError("party name is required")
	}
	if party.Type != "" && !models.ValidPartyType(party.Type) {
		return nil, models.NewValidationError("unknown party type: " + party.Type)
	}

	party.ID = id
	party.IsActive = existing.IsActive
	party.CreatedAt = existing.CreatedAt
	party.UpdatedAt = time.Now().UnixMilli()
	if party.Type == "" {
		party.Type = existing.Type
	}

	if _, err := r.DB.Collection(colParties).ReplaceOne(ctx, bson.M{"_id": id}, party); err != nil {
		return nil, err
	}
	return party, nil
}

// Deactivate is the soft delete: historical bilties keep referencing the
// party, so records are flagged inactive, never removed.
func (r *MongoPartyRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.DB.Collection(colParties).UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UnixMilli()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
