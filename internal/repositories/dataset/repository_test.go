package dataset

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_SetFirms(t *testing.T) {
	repo := NewRepository(nil)

	set := repo.SetFirms(`["Hansen AS", "Berg DA"]`)
	assert.NotEqual(t, uuid.Nil, set.ID)
	assert.Equal(t, []string{"Hansen AS", "Berg DA"}, set.Names)

	t.Run("reload replaces and changes the id", func(t *testing.T) {
		next := repo.SetFirms(`["Vold ANS"]`)
		assert.NotEqual(t, set.ID, next.ID)

		firms, _ := repo.Snapshot()
		assert.Equal(t, []string{"Vold ANS"}, firms.Names)
	})

	t.Run("invalid json loads empty", func(t *testing.T) {
		next := repo.SetFirms("not json")
		assert.Empty(t, next.Names)
	})
}

func TestRepository_SetCases(t *testing.T) {
	repo := NewRepository(nil)

	set := repo.SetCases(`{"hits":[{"domstol":"Oslo tingrett","sakenGjelder":"Heleri"}]}`)
	require.Len(t, set.Records, 1)
	assert.Equal(t, "Oslo tingrett Heleri", set.Records[0].Text)

	_, cases := repo.Snapshot()
	assert.Equal(t, set.ID, cases.ID)
	assert.Len(t, cases.Records, 1)
}

func TestRepository_EmptySnapshot(t *testing.T) {
	repo := NewRepository(nil)
	firms, cases := repo.Snapshot()
	assert.Empty(t, firms.Names)
	assert.Empty(t, cases.Records)
	assert.Equal(t, uuid.Nil, firms.ID)
	assert.Equal(t, uuid.Nil, cases.ID)
}
