// ABOUTME: Tests for the Badger-backed store and typed collection helpers
// ABOUTME: Covers round trips, absent keys, malformed JSON, and namespace listing
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/salespulse/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir())
	require.NoError(t, err, "Open should succeed on an empty directory")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("greeting", []byte("hello")))

	got, err := s.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestStoreGetAbsentKey(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Get("never-written")
	require.NoError(t, err, "absent keys are a normal state, not an error")
	assert.Nil(t, got)
}

func TestStoreOverwrite(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("k", []byte("v1")))
	require.NoError(t, s.Set("k", []byte("v2")))

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestStoreDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("k", []byte("v")))
	require.NoError(t, s.Delete("k"))

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again should be a no-op.
	require.NoError(t, s.Delete("k"))
}

func TestStoreKeys(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set(CollectionTeams, []byte("[]")))
	require.NoError(t, s.Set(CollectionGoals, []byte("[]")))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{CollectionTeams, CollectionGoals}, keys)
}

func TestCollectionRoundTrip(t *testing.T) {
	repos := map[string]Repository{
		"badger": openTestStore(t),
		"memory": NewMemory(),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			teams := []models.Team{
				{ID: "t1", Name: "Alpha", CompanyID: "c1", MonthlyGoal: 50000},
				{ID: "t2", Name: "Bravo", CompanyID: "c1"},
			}
			require.NoError(t, PutCollection(repo, CollectionTeams, teams))

			got := GetCollection[models.Team](repo, CollectionTeams)
			assert.Equal(t, teams, got)
		})
	}
}

func TestGetCollectionAbsent(t *testing.T) {
	repo := NewMemory()

	got := GetCollection[models.Goal](repo, CollectionGoals)
	assert.Empty(t, got, "absent collection should read as empty")
}

func TestGetCollectionMalformedJSON(t *testing.T) {
	repo := NewMemory()
	require.NoError(t, repo.Set(CollectionHabits, []byte("{not json")))

	got := GetCollection[models.Habit](repo, CollectionHabits)
	assert.Empty(t, got, "malformed collection should read as empty, not fail")
}

func TestMemoryIsolatesStoredBytes(t *testing.T) {
	repo := NewMemory()

	value := []byte("original")
	require.NoError(t, repo.Set("k", value))
	value[0] = 'X'

	got, err := repo.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}
