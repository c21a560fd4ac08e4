package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	certService "kursusku_backend/internals/features/certificates/user_certificate/service"
	chapterModel "kursusku_backend/internals/features/courses/chapter/model"
	"kursusku_backend/internals/features/courses/progress/model"
)

// CourseProgressPercent menghitung persentase course-level dari flag per-chapter.
// N = 0 (course tanpa chapter published) menghasilkan 0, bukan division by zero.
func CourseProgressPercent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	if completed < 0 {
		completed = 0
	}
	if completed > total {
		completed = total
	}
	return float64(completed) / float64(total) * 100
}

// ComputeCourseProgress: idempotent & bebas efek samping.
// Hanya chapter published + belum terhapus yang dihitung.
func ComputeCourseProgress(db *gorm.DB, userID, courseID uuid.UUID) (float64, error) {
	var chapterIDs []uuid.UUID
	if err := db.Model(&chapterModel.ChapterModel{}).
		Where("chapter_course_id = ? AND chapter_is_published = TRUE AND chapter_deleted_at IS NULL", courseID).
		Pluck("chapter_id", &chapterIDs).Error; err != nil {
		return 0, err
	}
	if len(chapterIDs) == 0 {
		return 0, nil
	}

	var completed int64
	if err := db.Model(&model.UserProgressModel{}).
		Where("user_progress_user_id = ? AND user_progress_chapter_id IN ? AND user_progress_is_completed = TRUE",
			userID, chapterIDs).
		Count(&completed).Error; err != nil {
		return 0, err
	}

	return CourseProgressPercent(int(completed), len(chapterIDs)), nil
}

// SetChapterProgress meng-upsert flag selesai, lalu (jika selesai) menghitung
// ulang agregat; saat tepat 100% panggil Certificate Issuer.
// Trigger boleh terpanggil berulang — idempotensi issuer yang jadi pengaman,
// bukan aggregator.
func SetChapterProgress(db *gorm.DB, userID, chapterID uuid.UUID, isCompleted bool) (*model.UserProgressModel, float64, error) {
	var chapter chapterModel.ChapterModel
	if err := db.Where("chapter_id = ? AND chapter_deleted_at IS NULL", chapterID).
		First(&chapter).Error; err != nil {
		return nil, 0, err
	}

	progress := model.UserProgressModel{
		UserProgressUserID:      userID,
		UserProgressChapterID:   chapterID,
		UserProgressIsCompleted: isCompleted,
	}

	// upsert pada pasangan unik (user, chapter)
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_progress_user_id"},
			{Name: "user_progress_chapter_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_progress_is_completed": isCompleted,
		}),
	}).Create(&progress).Error; err != nil {
		return nil, 0, err
	}

	percent, err := ComputeCourseProgress(db, userID, chapter.ChapterCourseID)
	if err != nil {
		return nil, 0, err
	}

	if isCompleted && percent >= 100 {
		if _, err := certService.IssueCertificate(db, userID, chapter.ChapterCourseID); err != nil {
			// penerbitan gagal jangan membatalkan progress; cukup dicatat
			log.Printf("[Progress.SetChapterProgress] issue certificate gagal user=%s course=%s err=%v",
				userID, chapter.ChapterCourseID, err)
		}
	}

	return &progress, percent, nil
}
