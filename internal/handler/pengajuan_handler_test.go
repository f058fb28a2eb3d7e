package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPengajuanApp(t *testing.T, repo *fakePengajuanRepo, settingRepo *fakeSettingRepo, userID, role string) *fiber.App {
	t.Helper()
	app := fiber.New()
	hdl := NewPengajuanHandler(repo, settingRepo, storage.New(t.TempDir()))
	stub := sessionStub(userID, role)
	app.Post("/api/pengajuan", stub, hdl.Create)
	app.Get("/api/pengajuan/:id/bukti", stub, hdl.GetBukti)
	app.Get("/api/pengajuan/:id", stub, hdl.GetDetail)
	app.Put("/api/admin/pengajuan/:id/status", stub, hdl.UpdateStatus)
	return app
}

func TestCreatePengajuanRejectedWhenIntakeClosed(t *testing.T) {
	settingRepo := newFakeSettingRepo()
	settingRepo.values[model.SettingPengajuanDibuka] = "false"
	app := newPengajuanApp(t, newFakePengajuanRepo(), settingRepo, "user-a", model.RoleEmployee)

	req := httptest.NewRequest(http.MethodPost, "/api/pengajuan", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "ditutup")
}

// total_nominal yang tidak bisa diparse harus ditolak 400, bukan diam-diam jadi 0.
func TestCreatePengajuanInvalidNominal(t *testing.T) {
	repo := newFakePengajuanRepo()
	app := newPengajuanApp(t, repo, newFakeSettingRepo(), "user-a", model.RoleEmployee)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("jenis", model.JenisReimbursement))
	require.NoError(t, writer.WriteField("judul", "Transport bulan Juli"))
	require.NoError(t, writer.WriteField("total_nominal", "seratus ribu"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/pengajuan", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "total_nominal")
	assert.Empty(t, repo.byID)
}

func TestGetDetailOwner(t *testing.T) {
	repo := newFakePengajuanRepo()
	repo.Create(&model.Pengajuan{UserID: "user-a", Jenis: model.JenisReimbursement, Judul: "Transport", Status: model.PengajuanPending})
	app := newPengajuanApp(t, repo, newFakeSettingRepo(), "user-a", model.RoleEmployee)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/pengajuan/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetDetailForbiddenForOtherUser(t *testing.T) {
	repo := newFakePengajuanRepo()
	repo.Create(&model.Pengajuan{UserID: "user-b", Jenis: model.JenisReimbursement, Judul: "Transport", Status: model.PengajuanPending})
	app := newPengajuanApp(t, repo, newFakeSettingRepo(), "user-a", model.RoleEmployee)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/pengajuan/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetDetailAdminCanReadAll(t *testing.T) {
	repo := newFakePengajuanRepo()
	repo.Create(&model.Pengajuan{UserID: "user-b", Jenis: model.JenisReimbursement, Judul: "Transport", Status: model.PengajuanPending})
	app := newPengajuanApp(t, repo, newFakeSettingRepo(), "admin-1", model.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/pengajuan/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetDetailNotFound(t *testing.T) {
	app := newPengajuanApp(t, newFakePengajuanRepo(), newFakeSettingRepo(), "user-a", model.RoleEmployee)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/pengajuan/99", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetBuktiListsMetadata(t *testing.T) {
	repo := newFakePengajuanRepo()
	repo.Create(&model.Pengajuan{UserID: "user-a", Jenis: model.JenisReimbursement, Judul: "Transport", Status: model.PengajuanPending})
	repo.AddBukti(&model.PengajuanBukti{PengajuanID: 1, Path: "user-a/1/nota.pdf", NamaAsli: "nota.pdf", Ukuran: 1024, ContentType: "application/pdf"})
	app := newPengajuanApp(t, repo, newFakeSettingRepo(), "user-a", model.RoleEmployee)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/pengajuan/1/bukti", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "user-a/1/nota.pdf", first["path"])
}

func TestUpdateStatusTransition(t *testing.T) {
	repo := newFakePengajuanRepo()
	repo.Create(&model.Pengajuan{UserID: "user-b", Jenis: model.JenisBarang, Judul: "Laptop", Status: model.PengajuanPending})
	app := newPengajuanApp(t, repo, newFakeSettingRepo(), "admin-1", model.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/admin/pengajuan/1/status", fiber.Map{
		"status": model.PengajuanApproved, "catatan_admin": "OK, silakan proses",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.PengajuanApproved, repo.statusUpdatedTo)
}

// Pengajuan final tidak bisa diubah lagi.
func TestUpdateStatusRejectsFinalized(t *testing.T) {
	repo := newFakePengajuanRepo()
	repo.Create(&model.Pengajuan{UserID: "user-b", Jenis: model.JenisBarang, Judul: "Laptop", Status: model.PengajuanApproved})
	app := newPengajuanApp(t, repo, newFakeSettingRepo(), "admin-1", model.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/admin/pengajuan/1/status", fiber.Map{
		"status": model.PengajuanRejected,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.statusUpdatedID)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	repo := newFakePengajuanRepo()
	repo.Create(&model.Pengajuan{UserID: "user-b", Jenis: model.JenisBarang, Judul: "Laptop", Status: model.PengajuanPending})
	app := newPengajuanApp(t, repo, newFakeSettingRepo(), "admin-1", model.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/admin/pengajuan/1/status", fiber.Map{
		"status": "ditunda",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
