package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	docValidationController "kursusku_backend/internals/features/users/document_validation/controller"
	userController "kursusku_backend/internals/features/users/user/controller"
	"kursusku_backend/internals/middlewares"
)

func UserRoutes(public, user, admin fiber.Router, db *gorm.DB) {
	authCtrl := userController.NewAuthController(db)
	docCtrl := docValidationController.NewDocumentValidationController(db)

	// 🌐 Public
	public.Post("/auth/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	public.Post("/auth/login", middlewares.LoginRateLimiter(), authCtrl.Login)

	// 👤 User (wajib login)
	user.Get("/auth/me", authCtrl.Me)
	user.Get("/document-validation", docCtrl.GetMyValidation)
	user.Post("/document-validation/submit", docCtrl.Submit)

	// 🛡 Admin/pengajar
	admin.Post("/document-validation/approve", docCtrl.Approve)
	admin.Post("/document-validation/reject", docCtrl.Reject)
}
