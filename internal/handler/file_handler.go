package handler

import (
	"errors"
	"fmt"
	"os"

	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/repository"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FileHandler menstream file dari storage lewat cek kepemilikan.
// Tidak ada folder upload yang di-serve statis tanpa auth.
type FileHandler struct {
	store         *storage.Storage
	pengajuanRepo repository.PengajuanRepository
}

func NewFileHandler(store *storage.Storage, pengajuanRepo repository.PengajuanRepository) *FileHandler {
	return &FileHandler{store: store, pengajuanRepo: pengajuanRepo}
}

// GetFotoAbsensi menstream foto absensi. Layout path: {user_id}/{file},
// jadi segmen pertama harus sama dengan caller kecuali caller admin.
// Cek kepemilikan dilakukan SEBELUM menyentuh storage.
func (h *FileHandler) GetFotoAbsensi(c *fiber.Ctx) error {
	objectPath, err := storage.CleanObjectPath(c.Params("*"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Path file tidak valid"})
	}

	userID := c.Locals("user_id").(string)
	if storage.OwnerSegment(objectPath) != userID && !middleware.IsAdminContext(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Akses ditolak: file milik user lain"})
	}

	return h.streamObject(c, storage.BucketFotoAbsensi, objectPath)
}

// GetBuktiPengajuan menstream file bukti. Kepemilikan di-resolve dari record
// pengajuan di database, bukan cuma dari struktur path.
func (h *FileHandler) GetBuktiPengajuan(c *fiber.Ctx) error {
	objectPath, err := storage.CleanObjectPath(c.Params("*"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Path file tidak valid"})
	}

	bukti, err := h.pengajuanRepo.FindBuktiByPath(objectPath)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return h.notFound(c, storage.BucketBuktiPengajuan, objectPath, "metadata bukti tidak terdaftar")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal cek metadata bukti: " + err.Error()})
	}

	pengajuan, err := h.pengajuanRepo.FindByID(bukti.PengajuanID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal cek pemilik bukti: " + err.Error()})
	}

	userID := c.Locals("user_id").(string)
	if pengajuan.UserID != userID && !middleware.IsAdminContext(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Akses ditolak: bukti milik user lain"})
	}

	return h.streamObject(c, storage.BucketBuktiPengajuan, objectPath)
}

func (h *FileHandler) streamObject(c *fiber.Ctx, bucket, objectPath string) error {
	f, info, err := h.store.Open(bucket, objectPath)
	if err != nil {
		if os.IsNotExist(err) {
			return h.notFound(c, bucket, objectPath, "objek tidak ada di storage")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal membuka file: " + err.Error()})
	}

	c.Set(fiber.HeaderContentType, storage.ContentTypeFor(objectPath))
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	c.Set(fiber.HeaderContentLength, fmt.Sprintf("%d", info.Size()))

	return c.SendStream(f, int(info.Size()))
}

// Body 404 sengaja diagnostik: menyebut bucket dan path yang dicari
// supaya gampang dicek silang dengan isi storage.
func (h *FileHandler) notFound(c *fiber.Ctx, bucket, objectPath, detail string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Objek tidak ditemukan: " + detail,
		"bucket":  bucket,
		"path":    objectPath,
	})
}
