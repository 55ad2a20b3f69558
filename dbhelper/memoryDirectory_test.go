package dbhelper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armsplatform/apiv1/models"
)

func TestMemoryUserDirectory_SaveAndFind(t *testing.T) {
	t.Parallel()

	d := NewMemoryUserDirectory()
	user := &models.User{Name: "Alice", Email: "alice@allowed.edu", Role: models.ROLE_STUDENT}
	require.NoError(t, d.Save(user))
	require.NotZero(t, user.ID)

	found, err := d.FindByEmail("alice@allowed.edu")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, user.ID, found.ID)

	exists, err := d.ExistsByEmail("alice@allowed.edu")
	require.NoError(t, err)
	require.True(t, exists)

	missing, err := d.FindByEmail("bob@allowed.edu")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestMemoryUserDirectory_FindReturnsCopy(t *testing.T) {
	t.Parallel()

	d := NewMemoryUserDirectory()
	require.NoError(t, d.Save(&models.User{Name: "Alice", Email: "alice@allowed.edu"}))

	found, _ := d.FindByEmail("alice@allowed.edu")
	found.Name = "Mallory"

	again, _ := d.FindByEmail("alice@allowed.edu")
	require.Equal(t, "Alice", again.Name)
}

func TestMemoryUserDirectory_IncrementUploadCount(t *testing.T) {
	t.Parallel()

	d := NewMemoryUserDirectory()
	user := &models.User{Name: "Alice", Email: "alice@allowed.edu"}
	require.NoError(t, d.Save(user))

	require.NoError(t, d.IncrementUploadCount(user.ID))
	require.NoError(t, d.IncrementUploadCount(user.ID))

	found, _ := d.FindByEmail("alice@allowed.edu")
	require.Equal(t, 2, found.UploadCount)
}

func TestMemoryUserDirectory_TopContributors(t *testing.T) {
	t.Parallel()

	d := NewMemoryUserDirectory()
	for _, user := range []*models.User{
		{Name: "A", Email: "a@x.edu", Role: models.ROLE_STUDENT, UploadCount: 3},
		{Name: "B", Email: "b@x.edu", Role: models.ROLE_FACULTY, UploadCount: 7},
		{Name: "C", Email: "c@x.edu", Role: models.ROLE_STUDENT, UploadCount: 5},
	} {
		require.NoError(t, d.Save(user))
	}

	overall, err := d.TopContributors("", 2)
	require.NoError(t, err)
	require.Len(t, overall, 2)
	require.Equal(t, "B", overall[0].Name)
	require.Equal(t, "C", overall[1].Name)

	students, err := d.TopContributors(models.ROLE_STUDENT, 10)
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, "C", students[0].Name)
}
