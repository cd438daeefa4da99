package models

import "gorm.io/gorm"

const (
	ReportTargetProduct    = "product"
	ReportTargetJobPosting = "job_posting"
	ReportTargetForumTopic = "forum_topic"
	ReportTargetForumPost  = "forum_post"
	ReportTargetSocialPost = "social_post"
	ReportTargetProfile    = "profile"

	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// Report names exactly one target: TargetType selects the table, TargetID the
// row. Profile reports carry TargetID = 0. The dedup index makes repeated
// reports of the same thing a constraint violation rather than a second row.
type Report struct {
	gorm.Model

	ReporterID uint   `gorm:"not null;uniqueIndex:idx_report_dedup"`
	ReportedID uint   `gorm:"not null;uniqueIndex:idx_report_dedup"`
	Reason     string `gorm:"not null;uniqueIndex:idx_report_dedup"`
	TargetType string `gorm:"not null;uniqueIndex:idx_report_dedup"`
	TargetID   uint   `gorm:"not null;default:0;uniqueIndex:idx_report_dedup"`
	Status     string `gorm:"not null;default:'pending'"`

	// Relationships
	Reporter User `gorm:"foreignKey:ReporterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reported User `gorm:"foreignKey:ReportedID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
