package repositoryImp

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmconnect/database"
	"farmconnect/entities"
)

func TestJournalRecordListDelete(t *testing.T) {
	db, err := database.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	r := New(db)

	require.NoError(t, r.Record(&entities.SyncEntry{FarmerID: "F1", Kind: entities.SyncTaskStatus, Ref: "7", OK: true}))
	require.NoError(t, r.Record(&entities.SyncEntry{FarmerID: "F1", Kind: entities.SyncRentalRequest, Ref: "#SR-2001", Simulated: true}))
	require.NoError(t, r.Record(&entities.SyncEntry{FarmerID: "F2", Kind: entities.SyncTaskStatus, Ref: "9"}))

	got, err := r.ListByFarmer("F1", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "#SR-2001", got[0].Ref)
	assert.True(t, got[0].Simulated)

	limited, err := r.ListByFarmer("F1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, r.DeleteByFarmer("F1"))
	got, err = r.ListByFarmer("F1", 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := r.ListByFarmer("F2", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
