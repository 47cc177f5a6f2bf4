package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrFileNotFound = errors.New("stored file not found")

// Upload wraps an incoming file so services and tests don't need a real
// multipart request to exercise the storage path.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadFromFileHeader opens fh as an Upload. Caller owns the returned
// closer.
func UploadFromFileHeader(fh *multipart.FileHeader) (*Upload, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &Upload{Filename: fh.Filename, Size: fh.Size, Content: f}, f, nil
}

// PhotoStorage menyimpan foto menu di folder publik lokal dan merujuknya
// dengan path relatif (mis. "foto_menu/<uuid>.png").
type PhotoStorage struct {
	BaseDir string // mis. "public"
	Folder  string // mis. "foto_menu"
}

func NewPhotoStorage(baseDir string) *PhotoStorage {
	return &PhotoStorage{BaseDir: baseDir, Folder: "foto_menu"}
}

// Save writes the upload under BaseDir/Folder with a fresh UUID name and
// returns the relative path to store on the row.
func (s *PhotoStorage) Save(up *Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	relPath := filepath.ToSlash(filepath.Join(s.Folder, uuid.New().String()+ext))

	absPath := filepath.Join(s.BaseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, up.Content); err != nil {
		os.Remove(absPath)
		return "", err
	}
	return relPath, nil
}

// Delete removes a previously stored file. Missing files are reported as
// ErrFileNotFound so callers can decide whether that matters.
func (s *PhotoStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(relPath)))
	if errors.Is(err, os.ErrNotExist) {
		return ErrFileNotFound
	}
	return err
}

// Exists reports whether the stored file is still retrievable.
func (s *PhotoStorage) Exists(relPath string) bool {
	_, err := os.Stat(filepath.Join(s.BaseDir, filepath.FromSlash(relPath)))
	return err == nil
}
