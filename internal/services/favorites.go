package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tarimpazar/tarimpazar/internal/models"
	"gorm.io/gorm"
)

// ToggleFavorite flips favorite membership for (actor, target) and reports
// the resulting state. Two sequential calls restore the original rows.
func ToggleFavorite(conn *gorm.DB, actorID uint, targetType string, targetID uint) (bool, error) {
	if targetType != models.FavoriteTargetProduct && targetType != models.FavoriteTargetJobPosting {
		return false, fmt.Errorf("%w: unsupported favorite target type", ErrValidation)
	}

	if targetID == 0 {
		return false, fmt.Errorf("%w: a favorite target is required", ErrValidation)
	}

	var existing models.Favorite

	err := conn.Where("user_id = ? AND target_type = ? AND target_id = ?", actorID, targetType, targetID).
		First(&existing).Error

	if err == nil {
		if err := conn.Unscoped().Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	favorite := models.Favorite{
		UserID:     actorID,
		TargetType: targetType,
		TargetID:   targetID,
	}

	if err := conn.Create(&favorite).Error; err != nil {
		if IsDuplicateKey(err) {
			// A concurrent toggle inserted first; the state is favorited
			// either way.
			return true, nil
		}
		return false, err
	}

	return true, nil
}

func CreateFavoriteGroup(conn *gorm.DB, actorID uint, name string) (models.FavoriteGroup, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return models.FavoriteGroup{}, fmt.Errorf("%w: a group name is required", ErrValidation)
	}

	var existing models.FavoriteGroup

	err := conn.Where("user_id = ? AND name = ?", actorID, name).First(&existing).Error

	if err == nil {
		return models.FavoriteGroup{}, fmt.Errorf("%w: you already have a group with this name", ErrConflict)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FavoriteGroup{}, err
	}

	group := models.FavoriteGroup{
		UserID: actorID,
		Name:   name,
	}

	if err := conn.Create(&group).Error; err != nil {
		if IsDuplicateKey(err) {
			return models.FavoriteGroup{}, fmt.Errorf("%w: you already have a group with this name", ErrConflict)
		}
		return models.FavoriteGroup{}, err
	}

	return group, nil
}

// DeleteFavoriteGroup removes a group the actor owns. Members are detached
// before the group row is deleted; deleting first would orphan or cascade
// away the favorites, and the members must survive ungrouped.
func DeleteFavoriteGroup(conn *gorm.DB, actorID, groupID uint) error {
	var group models.FavoriteGroup

	err := conn.Where("id = ? AND user_id = ?", groupID, actorID).First(&group).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: group not found", ErrNotFound)
		}
		return err
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Favorite{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&group).Error
	})
}

// MoveFavoriteToGroup reassigns one favorite's group. A nil groupID clears
// it. Both the favorite and the destination group must belong to the actor.
func MoveFavoriteToGroup(conn *gorm.DB, actorID, favoriteID uint, groupID *uint) error {
	var favorite models.Favorite

	err := conn.Where("id = ? AND user_id = ?", favoriteID, actorID).First(&favorite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: favorite not found", ErrNotFound)
		}
		return err
	}

	if groupID != nil {
		var group models.FavoriteGroup

		err := conn.Where("id = ? AND user_id = ?", *groupID, actorID).First(&group).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: group not found", ErrNotFound)
			}
			return err
		}
	}

	return conn.Model(&favorite).Update("group_id", groupID).Error
}

func ListFavorites(conn *gorm.DB, actorID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite

	if err := conn.Where("user_id = ?", actorID).Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, err
	}

	return favorites, nil
}
