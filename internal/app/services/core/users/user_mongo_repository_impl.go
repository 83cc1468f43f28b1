package users

import (
	"context"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) (contracts.UserRepository, error) {
	repo := &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
	if err := repo.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *UserMongoRepository) ensureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.Collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

// UpsertByEmail keeps registration idempotent: saving an existing email
// refreshes the name and never duplicates the user.
func (repo *UserMongoRepository) UpsertByEmail(ctx context.Context, user *models.User) (string, error) {
	filter := bson.M{"email": user.Email}
	update := bson.M{
		"$set":         bson.M{"name": user.Name},
		"$setOnInsert": bson.M{"email": user.Email, "createdAt": user.CreatedAt},
	}

	opts := options.Update().SetUpsert(true)
	result, err := repo.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return "", exceptions.ErrMongoDBUpdateDocument(err)
	}

	if result.UpsertedID != nil {
		return result.UpsertedID.(primitive.ObjectID).Hex(), nil
	}

	existing, err := repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", exceptions.ErrMongoDBFindDocument(mongo.ErrNoDocuments)
	}
	return existing.ID, nil
}

func (repo *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (repo *UserMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (repo *UserMongoRepository) SetRole(ctx context.Context, userID, role string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"role": role}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
