package handler

import (
	"strings"

	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	profileRepo repository.ProfileRepository
}

func NewEmployeeHandler(profileRepo repository.ProfileRepository) *EmployeeHandler {
	return &EmployeeHandler{profileRepo: profileRepo}
}

func (h *EmployeeHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	profile, err := h.profileRepo.FindByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Profil tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Berhasil mengambil profil", "data": profile})
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	profiles, err := h.profileRepo.GetAll(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil data pegawai: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Berhasil mengambil data pegawai", "data": profiles})
}

// Pointer supaya bisa bedakan field tidak dikirim (nil) vs dikirim kosong ("").
type UpdateEmployeeRequest struct {
	ID               string  `json:"id"`
	NIK              *string `json:"nik"`
	Division         *string `json:"division"`
	Position         *string `json:"position"`
	PhoneNumber      *string `json:"phone_number"`
	Address          *string `json:"address"`
	JoinDate         *string `json:"join_date"`
	EmploymentStatus *string `json:"employment_status"`
}

// UpdateEmployee (admin): update data kepegawaian pegawai lain.
// String kosong dinormalkan jadi NULL, bukan disimpan sebagai "".
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Format data salah"})
	}

	if strings.TrimSpace(req.ID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field wajib diisi: id"})
	}

	fields := map[string]interface{}{}
	setField(fields, "nik", req.NIK)
	setField(fields, "division", req.Division)
	setField(fields, "position", req.Position)
	setField(fields, "phone_number", req.PhoneNumber)
	setField(fields, "address", req.Address)
	setField(fields, "join_date", req.JoinDate)
	setField(fields, "employment_status", req.EmploymentStatus)

	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Tidak ada field yang diupdate"})
	}

	if err := h.profileRepo.UpdateFields(req.ID, fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal update data pegawai: " + err.Error()})
	}

	profile, err := h.profileRepo.FindByUserID(req.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil data terbaru: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Data pegawai berhasil diperbarui", "data": profile})
}

func setField(fields map[string]interface{}, column string, value *string) {
	if value == nil {
		return
	}
	if strings.TrimSpace(*value) == "" {
		fields[column] = nil
		return
	}
	fields[column] = *value
}
