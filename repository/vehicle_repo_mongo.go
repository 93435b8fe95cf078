package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"safeindiatransport/models"
)

const colVehicles = "vehicles"

type MongoVehicleRepo struct {
	DB *mongo.Database
}

func NewMongoVehicleRepo(db *mongo.Database) *MongoVehicleRepo {
	return &MongoVehicleRepo{DB: db}
}

func (r *MongoVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := prepareVehicle(vehicle); err != nil {
		return err
	}
	vehicle.ID = uuid.NewString()

	_, err := r.DB.Collection(colVehicles).InsertOne(ctx, vehicle)
	return err
}

func (r *MongoVehicleRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.DB.Collection(colVehicles).FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *MongoVehicleRepo) List(ctx context.Context, onlyActive bool) ([]*models.Vehicle, error) {
	filter := bson.M{}
	if onlyActive {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "vehicleNumber", Value: 1}})
	cur, err := r.DB.Collection(colVehicles).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Vehicle
	for cur.Next(ctx) {
		var v models.Vehicle
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}
