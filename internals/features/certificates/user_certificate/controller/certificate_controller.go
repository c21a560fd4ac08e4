package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/certificates/user_certificate/dto"
	"kursusku_backend/internals/features/certificates/user_certificate/model"
	helper "kursusku_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// 📄 GET /api/u/certificates — semua sertifikat milik user login
func (ctrl *CertificateController) GetMyCertificates(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var certs []model.UserCertificateModel
	if err := ctrl.DB.
		Where("user_cert_user_id = ?", userID).
		Order("user_cert_issued_at DESC").
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	out := make([]dto.UserCertificateDTO, 0, len(certs))
	for _, cert := range certs {
		out = append(out, dto.ToUserCertificateDTO(cert))
	}
	return helper.JsonOK(c, "Daftar sertifikat berhasil diambil", out)
}

// 🔍 GET /api/public/certificates/:code — verifikasi sertifikat via kode (tanpa login)
func (ctrl *CertificateController) GetCertificateByCode(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kode sertifikat wajib diisi")
	}

	var cert model.UserCertificateModel
	if err := ctrl.DB.Where("user_cert_code = ?", strings.ToUpper(code)).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	return helper.JsonOK(c, "Sertifikat ditemukan", dto.ToUserCertificateDTO(cert))
}
