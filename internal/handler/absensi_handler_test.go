package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAbsensiApp(t *testing.T, repo *fakeAbsensiRepo, userID string) *fiber.App {
	t.Helper()
	app := fiber.New()
	hdl := NewAbsensiHandler(repo, storage.New(t.TempDir()))
	stub := sessionStub(userID, model.RoleEmployee)
	app.Get("/api/absensi/today", stub, hdl.GetToday)
	app.Post("/api/absensi/checkin", stub, hdl.CheckIn)
	app.Post("/api/absensi/checkout", stub, hdl.CheckOut)
	return app
}

func multipartPhotoRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("foto", "selfie.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpegdata"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCheckInSavesRecord(t *testing.T) {
	repo := newFakeAbsensiRepo()
	app := newAbsensiApp(t, repo, "user-a")

	resp, err := app.Test(multipartPhotoRequest(t, "/api/absensi/checkin"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, repo.created)
	assert.Equal(t, "user-a", repo.created.UserID)
	assert.Equal(t, time.Now().Format("2006-01-02"), repo.created.Tanggal)
	assert.Equal(t, model.StatusUntukHari(time.Now()), repo.created.Status)
	assert.NotEmpty(t, repo.created.FotoMasuk)
}

func TestCheckInTwiceRejected(t *testing.T) {
	repo := newFakeAbsensiRepo()
	today := time.Now().Format("2006-01-02")
	repo.records["user-a|"+today] = &model.Absensi{UserID: "user-a", Tanggal: today, JamMasuk: "08:00:00", Status: model.AbsensiHadir}
	app := newAbsensiApp(t, repo, "user-a")

	resp, err := app.Test(multipartPhotoRequest(t, "/api/absensi/checkin"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckInRequiresPhoto(t *testing.T) {
	app := newAbsensiApp(t, newFakeAbsensiRepo(), "user-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/absensi/checkin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "foto")
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	app := newAbsensiApp(t, newFakeAbsensiRepo(), "user-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/absensi/checkout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Error store saat ambil absensi bukan berarti "belum check-in": harus 500.
func TestCheckOutStoreErrorReturns500(t *testing.T) {
	repo := newFakeAbsensiRepo()
	repo.getByDateErr = errors.New("koneksi database putus")
	app := newAbsensiApp(t, repo, "user-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/absensi/checkout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCheckOutTwiceRejected(t *testing.T) {
	repo := newFakeAbsensiRepo()
	today := time.Now().Format("2006-01-02")
	repo.records["user-a|"+today] = &model.Absensi{
		UserID: "user-a", Tanggal: today, JamMasuk: "08:00:00", JamPulang: "17:00:00", Status: model.AbsensiHadir,
	}
	app := newAbsensiApp(t, repo, "user-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/absensi/checkout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckOutSetsJamPulang(t *testing.T) {
	repo := newFakeAbsensiRepo()
	today := time.Now().Format("2006-01-02")
	repo.records["user-a|"+today] = &model.Absensi{UserID: "user-a", Tanggal: today, JamMasuk: "08:00:00", Status: model.AbsensiHadir}
	app := newAbsensiApp(t, repo, "user-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/absensi/checkout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, repo.records["user-a|"+today].JamPulang)
}

func TestGetTodayWithoutRecord(t *testing.T) {
	app := newAbsensiApp(t, newFakeAbsensiRepo(), "user-a")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/absensi/today", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Nil(t, body["data"])
}
