package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"safeindiatransport/models"
)

type MongoUserRepo struct {
	DB *mongo.Database
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) CreateUser(ctx context.Context, user *models.AppUser) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().UnixMilli()
	}
	user.IsActive = true

	_, err := r.DB.Collection(colUsers).InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.DB.Collection(colUsers).FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetUserByID(ctx context.Context, id string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.DB.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
