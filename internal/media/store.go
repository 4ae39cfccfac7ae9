package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio_backend/internal/logger"

	"github.com/google/uuid"
)

// ErrUnsupportedMedia rejects resume uploads with an extension outside the
// recognized set, before anything is written to disk.
var ErrUnsupportedMedia = errors.New("unsupported file type")

// Forwarder pushes a locally stored file to an external image host and
// returns the hosted URL. Implemented by imagehost.Client.
type Forwarder interface {
	Upload(ctx context.Context, filePath string) (string, error)
}

// Store owns the uploads directory: it persists incoming files under
// collision-resistant names, optionally forwards images to an external host,
// and cleans up superseded local files.
type Store struct {
	dir       string
	forwarder Forwarder // nil when forwarding is disabled
	log       *logger.Logger
}

// NewStore creates the uploads directory if needed and returns a Store.
func NewStore(dir string, forwarder Forwarder, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %q: %w", dir, err)
	}
	return &Store{dir: dir, forwarder: forwarder, log: log}, nil
}

// Dir returns the uploads directory path (used to mount static serving).
func (s *Store) Dir() string { return s.dir }

// SaveUpload writes the payload to the uploads directory under a generated
// name (unix millis + random suffix, original extension preserved).
func (s *Store) SaveUpload(fh *multipart.FileHeader) (Reference, error) {
	name := generatedName(fh.Filename)
	if err := s.writeFile(fh, name); err != nil {
		return Reference{}, err
	}
	return LocalReference(name), nil
}

// ResolveImage turns the incoming request parts into the final stored image
// reference. A file payload wins over an explicit path; with neither, the
// previous reference is retained unchanged.
func (s *Store) ResolveImage(ctx context.Context, fh *multipart.FileHeader, explicitPath string, previous Reference) (Reference, error) {
	if fh != nil {
		ref, err := s.SaveUpload(fh)
		if err != nil {
			return Reference{}, err
		}
		return s.forward(ctx, ref), nil
	}
	if explicitPath != "" {
		// Passthrough. Reachability is the caller's problem.
		return ParseReference(explicitPath), nil
	}
	return previous, nil
}

// forward hands the local file to the image host when forwarding is enabled.
// Any failure keeps the local reference; the operation never fails the request.
func (s *Store) forward(ctx context.Context, local Reference) Reference {
	if s.forwarder == nil {
		return local
	}
	url, err := s.forwarder.Upload(ctx, s.abs(local.Filename()))
	if err != nil {
		if s.log != nil {
			s.log.Warnw("image_forward_failed", "file", local.Filename(), "err", err)
		}
		return local
	}
	if err := os.Remove(s.abs(local.Filename())); err != nil && s.log != nil {
		s.log.Warnw("image_forward_cleanup_failed", "file", local.Filename(), "err", err)
	}
	return RemoteReference(url)
}

// Remove deletes the backing file of a local reference. Remote and
// passthrough references are never touched. A missing file is not an error.
func (s *Store) Remove(ref Reference) error {
	if !ref.Local() {
		return nil
	}
	if err := os.Remove(s.abs(ref.Filename())); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload %q: %w", ref.Filename(), err)
	}
	return nil
}

const resumeBaseName = "resume"

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
}

// SaveResume validates the extension, then writes the payload into the fixed
// resume slot (resume<ext>), removing any stale slot file left by a previous
// upload with a different extension.
func (s *Store) SaveResume(fh *multipart.FileHeader) (Reference, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !resumeExtensions[ext] {
		return Reference{}, fmt.Errorf("%w: %q (want .pdf, .docx or .doc)", ErrUnsupportedMedia, ext)
	}
	for stale := range resumeExtensions {
		if stale != ext {
			_ = os.Remove(s.abs(resumeBaseName + stale))
		}
	}
	name := resumeBaseName + ext
	if err := s.writeFile(fh, name); err != nil {
		return Reference{}, err
	}
	return LocalReference(name), nil
}

func (s *Store) writeFile(fh *multipart.FileHeader, name string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(s.abs(name))
	if err != nil {
		return fmt.Errorf("create upload file %q: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(s.abs(name))
		return fmt.Errorf("write upload file %q: %w", name, err)
	}
	return nil
}

func (s *Store) abs(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// generatedName builds a collision-resistant file name preserving the
// original extension.
func generatedName(original string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(original))
}
