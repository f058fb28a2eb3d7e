package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sistem-pengajuan/internal/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Fake repository untuk tes handler, tanpa database.

type fakeProfileRepo struct {
	profiles map[string]*model.Profile // key: user id
	byEmail  map[string]*model.Profile

	findEmailErr      error
	updateFieldsErr   error
	updateNameRoleErr error
	createErr         error

	created           []*model.Profile
	updatedFieldsID   string
	updatedFields     map[string]interface{}
	nameRoleUpdatedID string
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: map[string]*model.Profile{},
		byEmail:  map[string]*model.Profile{},
	}
}

func (r *fakeProfileRepo) add(p *model.Profile) {
	r.profiles[p.UserID] = p
	r.byEmail[p.Email] = p
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*model.Profile, error) {
	if p, ok := r.profiles[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) FindByEmail(email string) (*model.Profile, error) {
	if r.findEmailErr != nil {
		return nil, r.findEmailErr
	}
	if p, ok := r.byEmail[email]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) GetAll(search string) ([]model.Profile, error) {
	var list []model.Profile
	for _, p := range r.profiles {
		list = append(list, *p)
	}
	return list, nil
}

func (r *fakeProfileRepo) Create(profile *model.Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, profile)
	r.add(profile)
	return nil
}

func (r *fakeProfileRepo) Update(profile *model.Profile) error {
	r.add(profile)
	return nil
}

func (r *fakeProfileRepo) UpdateFields(userID string, fields map[string]interface{}) error {
	if r.updateFieldsErr != nil {
		return r.updateFieldsErr
	}
	r.updatedFieldsID = userID
	r.updatedFields = fields
	return nil
}

func (r *fakeProfileRepo) UpdateNameRole(userID, fullName, role string) error {
	if r.updateNameRoleErr != nil {
		return r.updateNameRoleErr
	}
	r.nameRoleUpdatedID = userID
	if p, ok := r.profiles[userID]; ok {
		p.FullName = fullName
		p.Role = role
	}
	return nil
}

func (r *fakeProfileRepo) Count() (int64, error) {
	return int64(len(r.profiles)), nil
}

// fakeIdentityReader cuma implement repository.IdentityReader. Dipakai tes
// auth supaya handler auth terbukti jalan tanpa akses tulis identity.
type fakeIdentityReader struct {
	identities map[string]*model.Identity // key: id
}

func newFakeIdentityReader() *fakeIdentityReader {
	return &fakeIdentityReader{identities: map[string]*model.Identity{}}
}

func (r *fakeIdentityReader) FindByEmail(email string) (*model.Identity, error) {
	for _, id := range r.identities {
		if id.Email == email {
			return id, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIdentityReader) FindByID(id string) (*model.Identity, error) {
	if identity, ok := r.identities[id]; ok {
		return identity, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeIdentityRepo struct {
	identities map[string]*model.Identity // key: id

	createErr         error
	deleteErr         error
	updateMetadataErr error

	deleted         []string
	metadataUpdated bool
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{identities: map[string]*model.Identity{}}
}

func (r *fakeIdentityRepo) FindByEmail(email string) (*model.Identity, error) {
	for _, id := range r.identities {
		if id.Email == email {
			return id, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIdentityRepo) FindByID(id string) (*model.Identity, error) {
	if identity, ok := r.identities[id]; ok {
		return identity, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIdentityRepo) Create(identity *model.Identity) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.identities[identity.ID] = identity
	return nil
}

func (r *fakeIdentityRepo) Delete(id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	delete(r.identities, id)
	return nil
}

func (r *fakeIdentityRepo) UpdateMetadata(id, fullName, role string) error {
	if r.updateMetadataErr != nil {
		return r.updateMetadataErr
	}
	r.metadataUpdated = true
	if identity, ok := r.identities[id]; ok {
		identity.FullName = fullName
		identity.Role = role
	}
	return nil
}

type fakePengajuanRepo struct {
	byID  map[uint]*model.Pengajuan
	bukti map[uint][]model.PengajuanBukti

	statusUpdatedID uint
	statusUpdatedTo string
}

func newFakePengajuanRepo() *fakePengajuanRepo {
	return &fakePengajuanRepo{
		byID:  map[uint]*model.Pengajuan{},
		bukti: map[uint][]model.PengajuanBukti{},
	}
}

func (r *fakePengajuanRepo) Create(p *model.Pengajuan) error {
	p.ID = uint(len(r.byID) + 1)
	r.byID[p.ID] = p
	return nil
}

func (r *fakePengajuanRepo) FindByID(id uint) (*model.Pengajuan, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePengajuanRepo) GetByUserID(userID string) ([]model.Pengajuan, error) {
	var list []model.Pengajuan
	for _, p := range r.byID {
		if p.UserID == userID {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (r *fakePengajuanRepo) GetAll(status string) ([]model.Pengajuan, error) {
	var list []model.Pengajuan
	for _, p := range r.byID {
		if status == "" || p.Status == status {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (r *fakePengajuanRepo) UpdateStatus(id uint, status, catatanAdmin string) error {
	r.statusUpdatedID = id
	r.statusUpdatedTo = status
	if p, ok := r.byID[id]; ok {
		p.Status = status
		p.CatatanAdmin = catatanAdmin
	}
	return nil
}

func (r *fakePengajuanRepo) AddBukti(b *model.PengajuanBukti) error {
	r.bukti[b.PengajuanID] = append(r.bukti[b.PengajuanID], *b)
	return nil
}

func (r *fakePengajuanRepo) GetBukti(pengajuanID uint) ([]model.PengajuanBukti, error) {
	return r.bukti[pengajuanID], nil
}

func (r *fakePengajuanRepo) FindBuktiByPath(path string) (*model.PengajuanBukti, error) {
	for _, list := range r.bukti {
		for i := range list {
			if list[i].Path == path {
				return &list[i], nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePengajuanRepo) CountByStatus(status string) (int64, error) {
	list, _ := r.GetAll(status)
	return int64(len(list)), nil
}

type fakeAbsensiRepo struct {
	records      map[string]*model.Absensi // key: userID + "|" + tanggal
	created      *model.Absensi
	getByDateErr error
}

func newFakeAbsensiRepo() *fakeAbsensiRepo {
	return &fakeAbsensiRepo{records: map[string]*model.Absensi{}}
}

func (r *fakeAbsensiRepo) Create(a *model.Absensi) error {
	r.created = a
	r.records[a.UserID+"|"+a.Tanggal] = a
	return nil
}

func (r *fakeAbsensiRepo) Update(a *model.Absensi) error {
	r.records[a.UserID+"|"+a.Tanggal] = a
	return nil
}

func (r *fakeAbsensiRepo) GetByDate(userID, tanggal string) (*model.Absensi, error) {
	if r.getByDateErr != nil {
		return nil, r.getByDateErr
	}
	if a, ok := r.records[userID+"|"+tanggal]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAbsensiRepo) GetHistory(userID string) ([]model.Absensi, error) {
	var list []model.Absensi
	for _, a := range r.records {
		if a.UserID == userID {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (r *fakeAbsensiRepo) GetByMonth(bulan, tahun string) ([]model.Absensi, error) {
	var list []model.Absensi
	prefix := tahun + "-" + bulan + "-"
	for _, a := range r.records {
		if len(a.Tanggal) >= len(prefix) && a.Tanggal[:len(prefix)] == prefix {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (r *fakeAbsensiRepo) CountByDate(tanggal string) (int64, error) {
	var count int64
	for _, a := range r.records {
		if a.Tanggal == tanggal {
			count++
		}
	}
	return count, nil
}

type fakeSettingRepo struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: map[string]string{}}
}

func (r *fakeSettingRepo) Get(key string) (*model.Setting, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if v, ok := r.values[key]; ok {
		return &model.Setting{Key: key, Value: v}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSettingRepo) Set(key, value string) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.values[key] = value
	return nil
}

type fakeMailer struct {
	sendErr error
	sentTo  string
	sent    int
}

func (m *fakeMailer) SendInvite(to, fullName, role, tempPassword string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sentTo = to
	m.sent++
	return nil
}

// Helper tes

// sessionStub meniru Session middleware: langsung set Locals.
func sessionStub(userID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("email", userID+"@kantor.local")
		c.Locals("role", role)
		return c.Next()
	}
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
