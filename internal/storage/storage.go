package storage

import (
	"errors"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	BucketFotoAbsensi    = "foto-absensi"
	BucketBuktiPengajuan = "bukti-pengajuan"
)

var ErrInvalidPath = errors.New("path objek tidak valid")

// Storage menyimpan file upload di disk lokal, dikelompokkan per bucket.
// Layout objek: {bucket}/{user_id}/... — segmen pertama adalah pemilik,
// itu yang dicek handler file sebelum streaming.
type Storage struct {
	baseDir string
}

func New(baseDir string) *Storage {
	return &Storage{baseDir: baseDir}
}

// CleanObjectPath menormalkan path objek dan menolak path traversal.
func CleanObjectPath(objectPath string) (string, error) {
	cleaned := filepath.ToSlash(filepath.Clean("/" + objectPath))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(cleaned, "..") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

// OwnerSegment mengambil segmen pertama path objek (= user id pemilik).
func OwnerSegment(objectPath string) string {
	parts := strings.SplitN(objectPath, "/", 2)
	return parts[0]
}

// PathFor mengembalikan path absolut objek sekaligus membuat foldernya.
func (s *Storage) PathFor(bucket, objectPath string) (string, error) {
	cleaned, err := CleanObjectPath(objectPath)
	if err != nil {
		return "", err
	}
	full := filepath.Join(s.baseDir, bucket, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}
	return full, nil
}

// Open membuka objek untuk streaming. Caller wajib Close file-nya.
func (s *Storage) Open(bucket, objectPath string) (*os.File, os.FileInfo, error) {
	cleaned, err := CleanObjectPath(objectPath)
	if err != nil {
		return nil, nil, err
	}
	full := filepath.Join(s.baseDir, bucket, filepath.FromSlash(cleaned))

	f, err := os.Open(full)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, info, nil
}

func ContentTypeFor(objectPath string) string {
	if ct := mime.TypeByExtension(filepath.Ext(objectPath)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// ListBuckets mengembalikan nama folder bucket yang ada di base dir.
func (s *Storage) ListBuckets() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var buckets []string
	for _, e := range entries {
		if e.IsDir() {
			buckets = append(buckets, e.Name())
		}
	}
	sort.Strings(buckets)
	return buckets, nil
}

// ListObjects mengembalikan maksimal limit path objek di sebuah bucket,
// dipakai endpoint diagnostik admin.
func (s *Storage) ListObjects(bucket string, limit int) ([]string, error) {
	root := filepath.Join(s.baseDir, bucket)
	var objects []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, errRel := filepath.Rel(root, path)
		if errRel != nil {
			return errRel
		}
		objects = append(objects, filepath.ToSlash(rel))
		if len(objects) >= limit {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return objects, nil
}
