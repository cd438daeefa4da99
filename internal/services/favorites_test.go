package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarimpazar/tarimpazar/internal/models"
)

func TestToggleFavoriteIsInvolutive(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")

	isFavorited, err := ToggleFavorite(conn, alice.ID, models.FavoriteTargetProduct, 10)
	require.NoError(t, err)
	assert.True(t, isFavorited)

	isFavorited, err = ToggleFavorite(conn, alice.ID, models.FavoriteTargetProduct, 10)
	require.NoError(t, err)
	assert.False(t, isFavorited)

	var count int64
	require.NoError(t, conn.Model(&models.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestToggleFavoriteRejectsBadTarget(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")

	_, err := ToggleFavorite(conn, alice.ID, "forum_topic", 3)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ToggleFavorite(conn, alice.ID, models.FavoriteTargetProduct, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestToggleFavoriteIsPerUser(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")
	bob := createTestUser(t, conn, "bob")

	_, err := ToggleFavorite(conn, alice.ID, models.FavoriteTargetJobPosting, 4)
	require.NoError(t, err)

	// Bob toggling the same target does not touch Alice's favorite.
	isFavorited, err := ToggleFavorite(conn, bob.ID, models.FavoriteTargetJobPosting, 4)
	require.NoError(t, err)
	assert.True(t, isFavorited)

	favorites, err := ListFavorites(conn, alice.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestCreateFavoriteGroupValidation(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")

	_, err := CreateFavoriteGroup(conn, alice.ID, "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateFavoriteGroupDuplicateName(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")
	bob := createTestUser(t, conn, "bob")

	_, err := CreateFavoriteGroup(conn, alice.ID, "Tohumlar")
	require.NoError(t, err)

	_, err = CreateFavoriteGroup(conn, alice.ID, "Tohumlar")
	assert.ErrorIs(t, err, ErrConflict)

	// The same name under another owner is fine.
	_, err = CreateFavoriteGroup(conn, bob.ID, "Tohumlar")
	require.NoError(t, err)
}

func TestDeleteFavoriteGroupDetachesMembers(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")

	group, err := CreateFavoriteGroup(conn, alice.ID, "Makineler")
	require.NoError(t, err)

	_, err = ToggleFavorite(conn, alice.ID, models.FavoriteTargetProduct, 77)
	require.NoError(t, err)

	var favorite models.Favorite
	require.NoError(t, conn.Where("user_id = ?", alice.ID).First(&favorite).Error)
	require.NoError(t, MoveFavoriteToGroup(conn, alice.ID, favorite.ID, &group.ID))

	require.NoError(t, DeleteFavoriteGroup(conn, alice.ID, group.ID))

	// The member survives, ungrouped.
	require.NoError(t, conn.First(&favorite, favorite.ID).Error)
	assert.Nil(t, favorite.GroupID)

	var groups int64
	require.NoError(t, conn.Model(&models.FavoriteGroup{}).Count(&groups).Error)
	assert.EqualValues(t, 0, groups)
}

func TestDeleteFavoriteGroupRequiresOwnership(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")
	bob := createTestUser(t, conn, "bob")

	group, err := CreateFavoriteGroup(conn, alice.ID, "Gubreler")
	require.NoError(t, err)

	err = DeleteFavoriteGroup(conn, bob.ID, group.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveFavoriteToGroupOwnershipChecks(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")
	bob := createTestUser(t, conn, "bob")

	_, err := ToggleFavorite(conn, alice.ID, models.FavoriteTargetProduct, 5)
	require.NoError(t, err)

	var favorite models.Favorite
	require.NoError(t, conn.Where("user_id = ?", alice.ID).First(&favorite).Error)

	bobsGroup, err := CreateFavoriteGroup(conn, bob.ID, "Digerleri")
	require.NoError(t, err)

	// Someone else's group is invisible to the actor.
	err = MoveFavoriteToGroup(conn, alice.ID, favorite.ID, &bobsGroup.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Someone else's favorite is invisible too.
	err = MoveFavoriteToGroup(conn, bob.ID, favorite.ID, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveFavoriteToNilClearsGroup(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")

	group, err := CreateFavoriteGroup(conn, alice.ID, "Sebzeler")
	require.NoError(t, err)

	_, err = ToggleFavorite(conn, alice.ID, models.FavoriteTargetProduct, 8)
	require.NoError(t, err)

	var favorite models.Favorite
	require.NoError(t, conn.Where("user_id = ?", alice.ID).First(&favorite).Error)

	require.NoError(t, MoveFavoriteToGroup(conn, alice.ID, favorite.ID, &group.ID))
	require.NoError(t, conn.First(&favorite, favorite.ID).Error)
	require.NotNil(t, favorite.GroupID)

	require.NoError(t, MoveFavoriteToGroup(conn, alice.ID, favorite.ID, nil))
	require.NoError(t, conn.First(&favorite, favorite.ID).Error)
	assert.Nil(t, favorite.GroupID)
}
