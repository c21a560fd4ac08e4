package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "kursusku_backend/internals/features/certificates/user_certificate/controller"
	accessController "kursusku_backend/internals/features/courses/access/controller"
	chapterController "kursusku_backend/internals/features/courses/chapter/controller"
	courseController "kursusku_backend/internals/features/courses/course/controller"
	progressController "kursusku_backend/internals/features/courses/progress/controller"
	purchaseController "kursusku_backend/internals/features/courses/purchase/controller"
)

func CourseRoutes(public, user, admin fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseController(db)
	chapterCtrl := chapterController.NewChapterController(db)
	purchaseCtrl := purchaseController.NewPurchaseController(db)
	accessCtrl := accessController.NewAccessController(db)
	progressCtrl := progressController.NewProgressController(db)
	certCtrl := certificateController.NewCertificateController(db)

	// 🌐 Public — katalog & preview
	public.Get("/courses", courseCtrl.GetAllCourses)
	public.Get("/courses/:id", courseCtrl.GetCourse)
	public.Get("/courses/:courseId/chapters", chapterCtrl.GetCourseChapters)
	public.Get("/courses/:courseId/chapters/:chapterId/access", accessCtrl.CheckChapterAccess)
	public.Get("/certificates/:code", certCtrl.GetCertificateByCode)

	// 👤 User — beli, belajar, progres
	user.Post("/courses/:courseId/purchase", purchaseCtrl.CreatePurchase)
	user.Get("/purchases", purchaseCtrl.GetMyPurchases)
	user.Get("/courses/:courseId/chapters/:chapterId/access", accessCtrl.CheckChapterAccess)
	user.Put("/courses/:courseId/chapters/:chapterId/progress", progressCtrl.SetChapterProgress)
	user.Get("/courses/:courseId/progress", progressCtrl.GetCourseProgress)
	user.Get("/chapters/:chapterId/exam", chapterCtrl.GetChapterExam)
	user.Get("/certificates", certCtrl.GetMyCertificates)

	// 🛡 Admin/pengajar — kelola konten
	admin.Post("/courses", courseCtrl.CreateCourse)
	admin.Put("/courses/:id", courseCtrl.UpdateCourse)
	admin.Delete("/courses/:id", courseCtrl.DeleteCourse)
	admin.Post("/courses/:id/exams/:examId", courseCtrl.AttachExam)
	admin.Delete("/courses/:id/exams/:examId", courseCtrl.DetachExam)
	admin.Post("/courses/:courseId/chapters", chapterCtrl.CreateChapter)
	admin.Put("/chapters/:chapterId", chapterCtrl.UpdateChapter)
	admin.Delete("/chapters/:chapterId", chapterCtrl.DeleteChapter)
	admin.Get("/chapters/:chapterId/exam", chapterCtrl.GetChapterExam)
}
