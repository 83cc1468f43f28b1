package appointmentoptions

import (
	"context"
	"testing"
	"time"

	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestNewAppointmentOptionMongoRepositoryFailsWithoutIndexes(t *testing.T) {
	clientOptions := options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50 * time.Millisecond)
	client, err := mongo.Connect(context.Background(), clientOptions)
	require.NoError(t, err)
	defer client.Disconnect(context.Background())

	repo, err := NewAppointmentOptionMongoRepository(client, "doctorsPortal")
	require.Error(t, err)
	assert.Nil(t, repo)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 500, customErr.StatusCode)
}
