package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "kursusku_backend/internals/features/exams/attempt/controller"
	examController "kursusku_backend/internals/features/exams/exam/controller"
	questionController "kursusku_backend/internals/features/exams/question/controller"
)

func ExamRoutes(public, user, admin fiber.Router, db *gorm.DB) {
	examCtrl := examController.NewExamController(db)
	questionCtrl := questionController.NewQuestionController(db)
	attemptCtrl := attemptController.NewAttemptController(db)

	// 👤 User — kerjakan exam
	user.Get("/exams/:examId/questions", questionCtrl.GetExamQuestionsForParticipant)
	user.Post("/exams/:examId/attempts", attemptCtrl.StartAttempt)
	user.Post("/attempts/:attemptId/submit", attemptCtrl.SubmitAttempt)
	user.Get("/attempts", attemptCtrl.GetMyAttempts)

	// 🛡 Admin/pengajar — kelola exam, soal, dan penilaian
	admin.Post("/exams", examCtrl.CreateExam)
	admin.Get("/exams/:id", examCtrl.GetExam)
	admin.Put("/exams/:id", examCtrl.UpdateExam)
	admin.Post("/exams/:id/publish", examCtrl.PublishExam)
	admin.Post("/exams/:id/unpublish", examCtrl.UnpublishExam)
	admin.Delete("/exams/:id", examCtrl.DeleteExam)

	admin.Post("/exams/:examId/questions", questionCtrl.CreateQuestion)
	admin.Post("/exams/:examId/questions/bulk", questionCtrl.BulkCreateQuestions)
	admin.Get("/exams/:examId/questions", questionCtrl.GetExamQuestions)
	admin.Patch("/exams/:examId/questions/:questionId/reorder", questionCtrl.ReorderQuestion)
	admin.Delete("/exams/:examId/questions/:questionId", questionCtrl.DeleteQuestion)

	admin.Get("/exams/:examId/attempts", attemptCtrl.GetExamAttempts)
	admin.Patch("/attempts/:attemptId/score", attemptCtrl.ScoreAttempt)
}
