package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PengajuanHandler struct {
	repo        repository.PengajuanRepository
	settingRepo repository.SettingRepository
	store       *storage.Storage
}

func NewPengajuanHandler(repo repository.PengajuanRepository, settingRepo repository.SettingRepository, store *storage.Storage) *PengajuanHandler {
	return &PengajuanHandler{repo: repo, settingRepo: settingRepo, store: store}
}

type PengajuanItemInput struct {
	NamaItem string  `json:"nama_item" validate:"required"`
	Qty      int     `json:"qty" validate:"required,min=1"`
	Harga    float64 `json:"harga" validate:"min=0"`
}

// intakeOpen: tanpa row setting, intake dianggap terbuka.
func (h *PengajuanHandler) intakeOpen() (bool, error) {
	setting, err := h.settingRepo.Get(model.SettingPengajuanDibuka)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}
	return setting.Value != "false", nil
}

// Create menerima multipart form: field teks + file bukti (bisa lebih dari satu).
func (h *PengajuanHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	open, err := h.intakeOpen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal cek status pengajuan: " + err.Error()})
	}
	if !open {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Pengajuan sedang ditutup oleh admin"})
	}

	jenis := c.FormValue("jenis")
	judul := c.FormValue("judul")
	if jenis != model.JenisReimbursement && jenis != model.JenisBarang {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field wajib diisi atau tidak valid: jenis"})
	}
	if strings.TrimSpace(judul) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field wajib diisi: judul"})
	}

	var totalNominal float64
	if raw := c.FormValue("total_nominal"); raw != "" {
		parsed, errNominal := strconv.ParseFloat(raw, 64)
		if errNominal != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field tidak valid: total_nominal"})
		}
		totalNominal = parsed
	}

	var items []model.PengajuanItem
	if rawItems := c.FormValue("items"); rawItems != "" {
		var inputs []PengajuanItemInput
		if err := json.Unmarshal([]byte(rawItems), &inputs); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field tidak valid: items"})
		}
		for _, in := range inputs {
			if err := validate.Struct(in); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": validationMessage(err)})
			}
			items = append(items, model.PengajuanItem{NamaItem: in.NamaItem, Qty: in.Qty, Harga: in.Harga})
		}
	}

	pengajuan := model.Pengajuan{
		UserID:       userID,
		Jenis:        jenis,
		Judul:        judul,
		Deskripsi:    c.FormValue("deskripsi"),
		TotalNominal: totalNominal,
		Status:       model.PengajuanPending,
		Items:        items,
	}

	if err := h.repo.Create(&pengajuan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan pengajuan: " + err.Error()})
	}

	// Simpan file bukti: bukti-pengajuan/{userID}/{pengajuanID}/{ts}_{nama}
	if form, errForm := c.MultipartForm(); errForm == nil && form != nil {
		for _, file := range form.File["bukti"] {
			objectPath := fmt.Sprintf("%s/%d/%d_%s", userID, pengajuan.ID, time.Now().UnixNano(), filepath.Base(file.Filename))
			fullPath, errPath := h.store.PathFor(storage.BucketBuktiPengajuan, objectPath)
			if errPath != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyiapkan penyimpanan bukti: " + errPath.Error()})
			}
			if errSave := c.SaveFile(file, fullPath); errSave != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan bukti: " + errSave.Error()})
			}

			contentType := file.Header.Get("Content-Type")
			if contentType == "" {
				contentType = storage.ContentTypeFor(objectPath)
			}
			bukti := model.PengajuanBukti{
				PengajuanID: pengajuan.ID,
				Path:        objectPath,
				NamaAsli:    file.Filename,
				Ukuran:      file.Size,
				ContentType: contentType,
			}
			if errBukti := h.repo.AddBukti(&bukti); errBukti != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan metadata bukti: " + errBukti.Error()})
			}
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Pengajuan berhasil dikirim", "data": pengajuan})
}

func (h *PengajuanHandler) GetOwn(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	list, err := h.repo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil data pengajuan: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Berhasil mengambil riwayat pengajuan", "data": list})
}

// findAuthorized: pemilik pengajuan atau admin. 404 dulu kalau record
// tidak ada, 403 kalau ada tapi bukan milik caller.
func (h *PengajuanHandler) findAuthorized(c *fiber.Ctx) (*model.Pengajuan, error) {
	id, errParam := strconv.Atoi(c.Params("id"))
	if errParam != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field tidak valid: id"})
	}

	pengajuan, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Pengajuan tidak ditemukan"})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil pengajuan: " + err.Error()})
	}

	userID := c.Locals("user_id").(string)
	if pengajuan.UserID != userID && !middleware.IsAdminContext(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Akses ditolak: pengajuan milik user lain"})
	}

	return pengajuan, nil
}

func (h *PengajuanHandler) GetDetail(c *fiber.Ctx) error {
	pengajuan, errResp := h.findAuthorized(c)
	if pengajuan == nil {
		return errResp
	}

	return c.JSON(fiber.Map{"success": true, "message": "Berhasil mengambil detail pengajuan", "data": pengajuan})
}

// GetBukti menampilkan metadata file bukti sebuah pengajuan.
func (h *PengajuanHandler) GetBukti(c *fiber.Ctx) error {
	pengajuan, errResp := h.findAuthorized(c)
	if pengajuan == nil {
		return errResp
	}

	bukti, err := h.repo.GetBukti(pengajuan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil daftar bukti: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Berhasil mengambil daftar bukti", "data": bukti})
}

func (h *PengajuanHandler) GetAllAdmin(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil data pengajuan: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Berhasil mengambil data pengajuan", "data": list})
}

type UpdateStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=approved rejected"`
	CatatanAdmin string `json:"catatan_admin"`
}

// UpdateStatus (admin): transisi pending -> approved/rejected.
// Pengajuan yang sudah final tidak bisa diubah lagi.
func (h *PengajuanHandler) UpdateStatus(c *fiber.Ctx) error {
	id, errParam := strconv.Atoi(c.Params("id"))
	if errParam != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field tidak valid: id"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": validationMessage(err)})
	}

	pengajuan, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Pengajuan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil pengajuan: " + err.Error()})
	}

	if pengajuan.IsFinal() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Pengajuan sudah final dan tidak bisa diubah"})
	}

	if err := h.repo.UpdateStatus(pengajuan.ID, req.Status, req.CatatanAdmin); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal update status: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Status pengajuan berhasil diperbarui"})
}
