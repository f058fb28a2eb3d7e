package model

import "gorm.io/gorm"

const (
	PengajuanPending  = "pending"
	PengajuanApproved = "approved"
	PengajuanRejected = "rejected"

	JenisReimbursement = "reimbursement"
	JenisBarang        = "barang"
)

// Pengajuan adalah permintaan reimbursement/pengadaan barang dari pegawai.
// Setelah status final (approved/rejected) record tidak boleh diubah lagi.
type Pengajuan struct {
	gorm.Model
	UserID       string  `json:"user_id" gorm:"type:char(36);index;not null"`
	Jenis        string  `json:"jenis"` // reimbursement / barang
	Judul        string  `json:"judul"`
	Deskripsi    string  `json:"deskripsi"`
	TotalNominal float64 `json:"total_nominal"`
	Status       string  `json:"status" gorm:"default:pending"`
	CatatanAdmin string  `json:"catatan_admin"`

	Items      []PengajuanItem  `json:"items"`
	BuktiFiles []PengajuanBukti `json:"bukti_files"`
}

type PengajuanItem struct {
	gorm.Model
	PengajuanID uint    `json:"pengajuan_id"`
	NamaItem    string  `json:"nama_item"`
	Qty         int     `json:"qty"`
	Harga       float64 `json:"harga"`
}

// PengajuanBukti menyimpan metadata file bukti di storage.
// Path berformat {user_id}/{pengajuan_id}/{nama_file}.
type PengajuanBukti struct {
	gorm.Model
	PengajuanID uint   `json:"pengajuan_id"`
	Path        string `json:"path" gorm:"unique;not null"`
	NamaAsli    string `json:"nama_asli"`
	Ukuran      int64  `json:"ukuran"`
	ContentType string `json:"content_type"`
}

func (p *Pengajuan) IsFinal() bool {
	return p.Status == PengajuanApproved || p.Status == PengajuanRejected
}
