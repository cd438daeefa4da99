package services

import (
	"errors"
	"fmt"

	"github.com/tarimpazar/tarimpazar/internal/models"
	"gorm.io/gorm"
)

func BlockUser(conn *gorm.DB, actorID, targetID uint) error {
	if actorID == targetID {
		return fmt.Errorf("%w: you cannot block yourself", ErrSelfTarget)
	}

	var existing models.Block

	err := conn.Where("blocker_id = ? AND blocked_id = ?", actorID, targetID).First(&existing).Error

	if err == nil {
		return fmt.Errorf("%w: user is already blocked", ErrConflict)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	block := models.Block{
		BlockerID: actorID,
		BlockedID: targetID,
	}

	if err := conn.Create(&block).Error; err != nil {
		if IsDuplicateKey(err) {
			return fmt.Errorf("%w: user is already blocked", ErrConflict)
		}
		return err
	}

	return nil
}

// UnblockUser removes the actor's own block on targetID. A missing row is
// reported as not found so clients can detect stale state.
func UnblockUser(conn *gorm.DB, actorID, targetID uint) error {
	// Hard delete: a soft-deleted row would still occupy the pair index.
	result := conn.Unscoped().
		Where("blocker_id = ? AND blocked_id = ?", actorID, targetID).
		Delete(&models.Block{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: no block exists for this user", ErrNotFound)
	}

	return nil
}

// IsBlocked is the symmetric predicate: true when a block exists in either
// direction. All messaging gates go through this, never the raw rows.
func IsBlocked(conn *gorm.DB, userA, userB uint) (bool, error) {
	var count int64

	err := conn.Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func ListBlocks(conn *gorm.DB, actorID uint) ([]models.Block, error) {
	var blocks []models.Block

	if err := conn.Where("blocker_id = ?", actorID).Order("created_at DESC").Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}
