package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarimpazar/tarimpazar/internal/models"
)

func TestResolveReportTarget(t *testing.T) {
	tests := []struct {
		name         string
		listingRef   string
		forumTopicID uint
		forumPostID  uint
		socialPostID uint
		want         ReportTarget
		wantErr      bool
	}{
		{name: "product ref", listingRef: "prod-42", want: ReportTarget{Type: models.ReportTargetProduct, ID: 42}},
		{name: "job ref", listingRef: "job-7", want: ReportTarget{Type: models.ReportTargetJobPosting, ID: 7}},
		{name: "forum topic", forumTopicID: 3, want: ReportTarget{Type: models.ReportTargetForumTopic, ID: 3}},
		{name: "forum post", forumPostID: 9, want: ReportTarget{Type: models.ReportTargetForumPost, ID: 9}},
		{name: "social post", socialPostID: 5, want: ReportTarget{Type: models.ReportTargetSocialPost, ID: 5}},
		{name: "nothing set means profile", want: ReportTarget{Type: models.ReportTargetProfile}},
		{name: "unknown prefix", listingRef: "car-1", wantErr: true},
		{name: "missing id", listingRef: "prod-", wantErr: true},
		{name: "non numeric id", listingRef: "prod-abc", wantErr: true},
		{name: "two targets", listingRef: "prod-1", forumPostID: 2, wantErr: true},
		{name: "two typed ids", forumTopicID: 1, socialPostID: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveReportTarget(tt.listingRef, tt.forumTopicID, tt.forumPostID, tt.socialPostID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateReportRejectsBlankReason(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")
	bob := createTestUser(t, conn, "bob")

	_, err := CreateReport(conn, alice.ID, bob.ID, "   ", ReportTarget{Type: models.ReportTargetProfile})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateReportRejectsSelf(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")

	_, err := CreateReport(conn, alice.ID, alice.ID, "spam", ReportTarget{Type: models.ReportTargetProfile})
	assert.ErrorIs(t, err, ErrSelfTarget)
}

func TestCreateReportRejectsInvalidTarget(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")
	bob := createTestUser(t, conn, "bob")

	// A typed target needs an id; a profile target must not carry one.
	_, err := CreateReport(conn, alice.ID, bob.ID, "spam", ReportTarget{Type: models.ReportTargetProduct})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateReport(conn, alice.ID, bob.ID, "spam", ReportTarget{Type: models.ReportTargetProfile, ID: 4})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateReport(conn, alice.ID, bob.ID, "spam", ReportTarget{Type: "listing", ID: 4})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateReportDeduplicates(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")
	bob := createTestUser(t, conn, "bob")

	target := ReportTarget{Type: models.ReportTargetProduct, ID: 12}

	report, err := CreateReport(conn, alice.ID, bob.ID, "spam", target)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)

	_, err = CreateReport(conn, alice.ID, bob.ID, "spam", target)
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, conn.Model(&models.Report{}).
		Where("reporter_id = ? AND reported_id = ? AND reason = ? AND target_type = ? AND target_id = ?",
			alice.ID, bob.ID, "spam", target.Type, target.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateReportDifferentTuplesCoexist(t *testing.T) {
	conn := setupTestDB(t)
	alice := createTestUser(t, conn, "alice")
	bob := createTestUser(t, conn, "bob")
	carol := createTestUser(t, conn, "carol")

	target := ReportTarget{Type: models.ReportTargetProduct, ID: 12}

	_, err := CreateReport(conn, alice.ID, bob.ID, "spam", target)
	require.NoError(t, err)

	// Different reason, different reporter, different target: all distinct.
	_, err = CreateReport(conn, alice.ID, bob.ID, "fraud", target)
	require.NoError(t, err)
	_, err = CreateReport(conn, carol.ID, bob.ID, "spam", target)
	require.NoError(t, err)
	_, err = CreateReport(conn, alice.ID, bob.ID, "spam", ReportTarget{Type: models.ReportTargetProfile})
	require.NoError(t, err)

	var count int64
	require.NoError(t, conn.Model(&models.Report{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}
