package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterModel "kursusku_backend/internals/features/courses/chapter/model"
	courseModel "kursusku_backend/internals/features/courses/course/model"
	purchaseModel "kursusku_backend/internals/features/courses/purchase/model"
)

var ErrChapterNotFound = errors.New("chapter tidak ditemukan")

// Alasan hasil akses (bukan error — "tidak berhak" adalah hasil negatif normal)
const (
	ReasonOK               = "ok"
	ReasonPreviewOK        = "preview_ok"
	ReasonLoginRequired    = "login_required"
	ReasonPurchaseRequired = "purchase_required"
	ReasonNotAvailable     = "chapter_not_available"
)

type AccessInput struct {
	IsPreview bool

	HasUser            bool
	HasStaffCapability bool // admin/owner, atau pemilik course

	CourseAlive      bool // course ada & tidak soft-delete
	ChapterAlive     bool // chapter ada & tidak soft-delete
	ChapterPublished bool
	ChapterIsFree    bool

	HasPurchase bool
}

type AccessResult struct {
	Viewable bool `json:"viewable"`

	// Chapter gratis memberi akses video tapi TIDAK akses attachment —
	// attachment hanya terbuka ketika ada Purchase (asimetri yang disengaja).
	CanViewAttachments bool `json:"can_view_attachments"`

	Reason string `json:"reason"`
}

// DecideChapterAccess: keputusan murni atas state yang sudah dimuat.
// Read-only, tanpa efek samping.
func DecideChapterAccess(in AccessInput) AccessResult {
	// course soft-delete / chapter hilang / unpublished → tidak tersedia,
	// berlaku juga untuk preview
	if !in.CourseAlive || !in.ChapterAlive || !in.ChapterPublished {
		return AccessResult{Viewable: false, Reason: ReasonNotAvailable}
	}

	// preview: cukup published + alive, tanpa entitlement
	if in.IsPreview {
		return AccessResult{
			Viewable:           true,
			CanViewAttachments: false,
			Reason:             ReasonPreviewOK,
		}
	}

	if !in.HasUser {
		return AccessResult{Viewable: false, Reason: ReasonLoginRequired}
	}

	if in.ChapterIsFree || in.HasPurchase || in.HasStaffCapability {
		return AccessResult{
			Viewable:           true,
			CanViewAttachments: in.HasPurchase || in.HasStaffCapability,
			Reason:             ReasonOK,
		}
	}

	return AccessResult{Viewable: false, Reason: ReasonPurchaseRequired}
}

// ResolveChapterAccess memuat state (course, chapter, purchase) lalu memutuskan.
// userID == uuid.Nil berarti anonim.
func ResolveChapterAccess(db *gorm.DB, userID uuid.UUID, isStaff bool, courseID, chapterID uuid.UUID, isPreview bool) (AccessResult, error) {
	in := AccessInput{
		IsPreview:          isPreview,
		HasUser:            userID != uuid.Nil,
		HasStaffCapability: isStaff,
	}

	var chapter chapterModel.ChapterModel
	err := db.Where("chapter_id = ? AND chapter_course_id = ?", chapterID, courseID).
		First(&chapter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccessResult{}, ErrChapterNotFound
		}
		return AccessResult{}, err
	}
	in.ChapterAlive = chapter.ChapterDeletedAt == nil
	in.ChapterPublished = chapter.ChapterIsPublished
	in.ChapterIsFree = chapter.ChapterIsFree

	var courseCount int64
	if err := db.Model(&courseModel.CourseModel{}).
		Where("course_id = ? AND course_deleted_at IS NULL", courseID).
		Count(&courseCount).Error; err != nil {
		return AccessResult{}, err
	}
	in.CourseAlive = courseCount > 0

	if in.HasUser && !isPreview {
		var purchaseCount int64
		if err := db.Model(&purchaseModel.PurchaseModel{}).
			Where("purchase_user_id = ? AND purchase_course_id = ?", userID, courseID).
			Count(&purchaseCount).Error; err != nil {
			return AccessResult{}, err
		}
		in.HasPurchase = purchaseCount > 0
	}

	return DecideChapterAccess(in), nil
}
