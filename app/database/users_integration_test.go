package database

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func TestCreateUserAndPupil(t *testing.T) {
	db := testDB(t)

	n := rand.Intn(1000000)
	user := &models.User{
		UIN:      fmt.Sprintf("GFA-P-%06d", n),
		Role:     models.RolePupil,
		FullName: "Test Pupil",
		Username: "testpupil",
		Email:    fmt.Sprintf("pupil%06d@example.com", n),
		Password: "hashed",
	}
	require.NoError(t, CreateUser(db, user))
	require.NotEmpty(t, user.ID)
	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM pupils WHERE user_id = $1`, user.ID)
		_, _ = db.Exec(`DELETE FROM users WHERE id = $1`, user.ID)
	})

	got, err := GetUserByUIN(db, user.UIN)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)
	require.Equal(t, models.RolePupil, got.Role)

	exists, err := UserExistsByEmail(db, user.Email)
	require.NoError(t, err)
	require.True(t, exists)

	pupil := &models.Pupil{
		UserID:   user.ID,
		FullName: "Test Pupil",
		Email:    user.Email,
		Class:    "Primary 3",
		UIN:      user.UIN,
		Password: "hashed",
	}
	require.NoError(t, CreatePupil(db, pupil))

	byUIN, err := GetPupilByUIN(db, user.UIN)
	require.NoError(t, err)
	require.Equal(t, pupil.ID, byUIN.ID)
	require.Equal(t, "Primary 3", byUIN.Class)
}

func TestCreateUserDuplicateUIN(t *testing.T) {
	db := testDB(t)

	n := rand.Intn(1000000)
	uin := fmt.Sprintf("GFA-P-%06d", n)

	first := &models.User{
		UIN:      uin,
		Role:     models.RolePupil,
		FullName: "First",
		Email:    fmt.Sprintf("first%06d@example.com", n),
		Password: "hashed",
	}
	require.NoError(t, CreateUser(db, first))
	t.Cleanup(func() { _, _ = db.Exec(`DELETE FROM users WHERE id = $1`, first.ID) })

	dup := &models.User{
		UIN:      uin,
		Role:     models.RolePupil,
		FullName: "Second",
		Email:    fmt.Sprintf("second%06d@example.com", n),
		Password: "hashed",
	}
	err := CreateUser(db, dup)
	require.Error(t, err)
	require.True(t, IsUniqueViolation(err))
}
