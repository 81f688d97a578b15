package firestore

import (
	"context"
	"os"
	"testing"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const emulatorHostEnv = "FIRESTORE_EMULATOR_HOST"

// setupTestClient connects to the Firestore emulator under a fresh project id,
// which keeps every test's documents apart.
func setupTestClient(t *testing.T) *fs.Client {
	t.Helper()

	if os.Getenv(emulatorHostEnv) == "" {
		t.Skip(emulatorHostEnv + " is not set")
	}

	client, err := fs.NewClient(context.Background(), "naguil-test-"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func countDocs(t *testing.T, client *fs.Client, collection string) int {
	t.Helper()

	snaps, err := client.Collection(collection).Documents(context.Background()).GetAll()
	require.NoError(t, err)

	return len(snaps)
}
