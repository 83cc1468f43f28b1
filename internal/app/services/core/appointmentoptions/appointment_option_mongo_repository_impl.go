package appointmentoptions

import (
	"context"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentOptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentOptionMongoRepository(db *mongo.Client, dbName string) (contracts.AppointmentOptionRepository, error) {
	repo := &AppointmentOptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointmentOptions),
	}
	if err := repo.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *AppointmentOptionMongoRepository) ensureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.Collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *AppointmentOptionMongoRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointmentOptions := make([]models.AppointmentOption, 0)
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentOptions, nil
}

func (repo *AppointmentOptionMongoRepository) FindDistinctNames(ctx context.Context) ([]string, error) {
	values, err := repo.Collection.Distinct(ctx, "name", bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	names := make([]string, 0, len(values))
	for _, value := range values {
		if name, ok := value.(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}
