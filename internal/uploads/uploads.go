// Package uploads manages the image files referenced by catalog products.
// Saved files get collision-resistant snowflake-derived names so concurrent
// uploads never clash; removals are best-effort by policy, a missing or
// undeletable file is logged and otherwise ignored.
package uploads

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Manager saves and removes files under a single uploads directory which is
// also exposed as the /uploads static mount.
type Manager struct {
	dir  string
	node *snowflake.Node
}

func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create uploads dir")
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "init snowflake node")
	}
	return &Manager{dir: dir, node: node}, nil
}

// Save stores the uploaded file under a generated name preserving the original
// extension and returns the public /uploads/<name> reference.
func (m *Manager) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := m.node.Generate().String() + ext
	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", errors.Wrap(err, "write upload file")
	}
	return "/uploads/" + name, nil
}

// Remove deletes the file behind a /uploads/<name> reference. Failures are
// logged and swallowed; superseded images may leak as orphaned files.
func (m *Manager) Remove(ref string) {
	if ref == "" {
		return
	}
	name := path.Base(ref)
	if name == "." || name == ".." || name == "/" {
		return
	}
	if err := os.Remove(filepath.Join(m.dir, name)); err != nil {
		zap.L().Warn("failed to remove uploaded image", zap.String("ref", ref), zap.Error(err))
	}
}
