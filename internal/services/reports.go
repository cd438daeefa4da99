package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tarimpazar/tarimpazar/internal/models"
	"github.com/tarimpazar/tarimpazar/internal/utils"
	"gorm.io/gorm"
)

// ReportTarget is the tagged variant behind a report: exactly one kind, and
// an id unless the kind is profile.
type ReportTarget struct {
	Type string
	ID   uint
}

// ResolveReportTarget demultiplexes the caller's optional target fields into
// a single ReportTarget. A listing ref uses the "prod-"/"job-" prefix
// convention; forum and social ids arrive already typed. Nothing set means a
// profile report; more than one source set is rejected.
func ResolveReportTarget(listingRef string, forumTopicID, forumPostID, socialPostID uint) (ReportTarget, error) {
	var targets []ReportTarget

	if strings.TrimSpace(listingRef) != "" {
		targetType, targetID, err := utils.ParseListingRef(listingRef)
		if err != nil {
			return ReportTarget{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		targets = append(targets, ReportTarget{Type: targetType, ID: targetID})
	}

	if forumTopicID != 0 {
		targets = append(targets, ReportTarget{Type: models.ReportTargetForumTopic, ID: forumTopicID})
	}

	if forumPostID != 0 {
		targets = append(targets, ReportTarget{Type: models.ReportTargetForumPost, ID: forumPostID})
	}

	if socialPostID != 0 {
		targets = append(targets, ReportTarget{Type: models.ReportTargetSocialPost, ID: socialPostID})
	}

	if len(targets) > 1 {
		return ReportTarget{}, fmt.Errorf("%w: a report may name at most one target", ErrValidation)
	}

	if len(targets) == 0 {
		return ReportTarget{Type: models.ReportTargetProfile}, nil
	}

	return targets[0], nil
}

// CreateReport records an abuse report, rejecting duplicates of the full
// (reporter, reported, reason, target) tuple. The lookup catches the common
// case; the dedup index catches the race, and both surface as the same
// conflict.
func CreateReport(conn *gorm.DB, reporterID, reportedID uint, reason string, target ReportTarget) (models.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return models.Report{}, fmt.Errorf("%w: a report reason is required", ErrValidation)
	}

	if reporterID == reportedID {
		return models.Report{}, fmt.Errorf("%w: you cannot report yourself", ErrSelfTarget)
	}

	if !validReportTarget(target) {
		return models.Report{}, fmt.Errorf("%w: invalid report target", ErrValidation)
	}

	var existing models.Report

	err := conn.Where(
		"reporter_id = ? AND reported_id = ? AND reason = ? AND target_type = ? AND target_id = ?",
		reporterID, reportedID, reason, target.Type, target.ID,
	).First(&existing).Error

	if err == nil {
		return models.Report{}, fmt.Errorf("%w: you have already reported this", ErrConflict)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Report{}, err
	}

	report := models.Report{
		ReporterID: reporterID,
		ReportedID: reportedID,
		Reason:     reason,
		TargetType: target.Type,
		TargetID:   target.ID,
		Status:     models.ReportStatusPending,
	}

	if err := conn.Create(&report).Error; err != nil {
		if IsDuplicateKey(err) {
			return models.Report{}, fmt.Errorf("%w: you have already reported this", ErrConflict)
		}
		return models.Report{}, err
	}

	Publish(conn, ReportFiled{Report: report})

	return report, nil
}

func validReportTarget(target ReportTarget) bool {
	switch target.Type {
	case models.ReportTargetProduct,
		models.ReportTargetJobPosting,
		models.ReportTargetForumTopic,
		models.ReportTargetForumPost,
		models.ReportTargetSocialPost:
		return target.ID != 0
	case models.ReportTargetProfile:
		return target.ID == 0
	default:
		return false
	}
}
