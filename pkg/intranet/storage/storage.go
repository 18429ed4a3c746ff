package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/gabriel-vasile/mimetype"
	"github.com/teris-io/shortid"
)

// Kind selects the storage policy for an upload.
type Kind string

const (
	KindFile Kind = "file"
	KindIcon Kind = "icon"
)

const (
	// DefaultMaxFileSize caps generic uploads at 50 MiB unless configured.
	DefaultMaxFileSize = 50 << 20

	// maxIconSize is fixed regardless of the generic ceiling.
	maxIconSize = 2 << 20

	iconDir      = "icons"
	publicPrefix = "/uploads"
)

// StoredObject reports where an upload landed.
type StoredObject struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

// RemoveResult distinguishes a real removal from bytes that were already
// gone, so callers can log the latter without failing.
type RemoveResult int

const (
	RemoveOK RemoveResult = iota
	RemoveNotFound
)

// StoredFile is one entry under the content root, as seen by the sweep job.
type StoredFile struct {
	Path    string
	ModTime time.Time
}

// Store writes uploads under a single content root and hands out
// root-relative paths that stay valid for the life of the referencing row.
type Store struct {
	Root        string
	MaxFileSize int64
}

func New(root string, maxFileSize int64) *Store {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Store{Root: root, MaxFileSize: maxFileSize}
}

// Save validates the payload against the policy for kind, writes it under a
// collision-resistant name and returns the public path plus captured
// metadata. The write goes to a temp file first and is renamed into place,
// so no partial file is ever visible under the final name.
func (s *Store) Save(payload []byte, originalName, contentType string, kind Kind) (StoredObject, error) {
	if contentType == "" {
		contentType = mimetype.Detect(payload).String()
	}

	switch kind {
	case KindIcon:
		if !strings.HasPrefix(contentType, "image/") {
			return StoredObject{}, problem.NewUnsupportedMediaType("only image files are allowed as icon")
		}
		if int64(len(payload)) > maxIconSize {
			return StoredObject{}, problem.NewPayloadTooLarge("icon size must be at most 2 MiB")
		}
	default:
		if int64(len(payload)) > s.MaxFileSize {
			return StoredObject{}, problem.NewPayloadTooLarge(
				fmt.Sprintf("file size exceeds the maximum of %d bytes", s.MaxFileSize))
		}
	}

	name, dir := s.storageName(originalName, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return StoredObject{}, problem.NewStorageError("cannot create upload directory: " + err.Error())
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return StoredObject{}, problem.NewStorageError("cannot create temp file: " + err.Error())
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return StoredObject{}, problem.NewStorageError("cannot write upload: " + err.Error())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return StoredObject{}, problem.NewStorageError("cannot finish upload: " + err.Error())
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		os.Remove(tmp.Name())
		return StoredObject{}, problem.NewStorageError("cannot place upload: " + err.Error())
	}

	public := path.Join(publicPrefix, name)
	if kind == KindIcon {
		public = path.Join(publicPrefix, iconDir, name)
	}
	return StoredObject{Path: public, Size: int64(len(payload)), MimeType: contentType}, nil
}

// Remove deletes the bytes behind a public path. Missing bytes are not an
// error: the row they belonged to must stay deletable.
func (s *Store) Remove(publicPath string) (RemoveResult, error) {
	abs, err := s.resolve(publicPath)
	if err != nil {
		return RemoveNotFound, err
	}
	if err := os.Remove(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return RemoveNotFound, nil
		}
		return RemoveNotFound, err
	}
	return RemoveOK, nil
}

// List walks the content root; used by the orphan sweep.
func (s *Store) List() ([]StoredFile, error) {
	var out []StoredFile
	err := filepath.WalkDir(s.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.Root, p)
		if err != nil {
			return err
		}
		out = append(out, StoredFile{
			Path:    path.Join(publicPrefix, filepath.ToSlash(rel)),
			ModTime: info.ModTime(),
		})
		return nil
	})
	return out, err
}

// storageName combines a high-resolution timestamp with either the sanitized
// original name (files) or a random suffix plus the original extension
// (icons).
func (s *Store) storageName(originalName string, kind Kind) (name, dir string) {
	ts := time.Now().UnixMilli()
	if kind == KindIcon {
		suffix, err := shortid.Generate()
		if err != nil {
			suffix = fmt.Sprintf("%d", os.Getpid())
		}
		ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
		if ext == "" {
			ext = "img"
		}
		return fmt.Sprintf("%d-%s.%s", ts, suffix, ext), filepath.Join(s.Root, iconDir)
	}
	return fmt.Sprintf("%d-%s", ts, sanitizeName(originalName)), s.Root
}

// resolve maps a public path back onto the content root, refusing anything
// that would escape it.
func (s *Store) resolve(publicPath string) (string, error) {
	rel := strings.TrimPrefix(publicPath, publicPrefix)
	rel = strings.TrimPrefix(rel, "/")
	abs := filepath.Join(s.Root, filepath.FromSlash(rel))
	root := filepath.Clean(s.Root) + string(os.PathSeparator)
	if !strings.HasPrefix(abs, root) {
		return "", fmt.Errorf("path %q is outside the content root", publicPath)
	}
	return abs, nil
}

func sanitizeName(name string) string {
	base := filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
