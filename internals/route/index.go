package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/middlewares/auth"
	"kursusku_backend/internals/route/details"
)

// SetupRoutes memasang seluruh endpoint dalam tiga lapis:
//   /api/public — tanpa login
//   /api/u      — wajib login (student ke atas)
//   /api/a      — wajib login + kapabilitas pengajar ke atas
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	secret := configs.GetEnv("JWT_SECRET", "")

	api := app.Group("/api")

	public := api.Group("/public")

	user := api.Group("/u", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              secret,
		AllowCookieFallback: true,
	}))

	admin := api.Group("/a", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              secret,
		AllowCookieFallback: true,
	}), auth.OnlyRoles(
		"Akses khusus pengajar ke atas",
		constants.TeacherAndAbove...,
	))

	details.UserRoutes(public, user, admin, db)
	details.CourseRoutes(public, user, admin, db)
	details.ExamRoutes(public, user, admin, db)
}
