package namespace

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sys/unix"
)

// DefaultRootDir is the registry root shared with the standard ip-netns
// tooling; namespaces created under it are visible to that tooling and
// vice versa.
const DefaultRootDir = "/run/netns"

//go:generate counterfeiter --fake-name Repository . Repository
type Repository interface {
	Create(name string) (*Netns, error)
	Get(name string) (*Netns, error)
	Destroy(name string) error
	List() ([]string, error)
}

type repository struct {
	root string
}

// NewRepository returns a Repository rooted at root, creating the
// directory if necessary.
func NewRepository(root string) (Repository, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create registry root %s: %s", root, err)
	}
	return &repository{root: root}, nil
}

// Create allocates a new network namespace and bind mounts it at
// root/name. The name must not be taken; the returned error satisfies
// os.IsExist when it is. As with New, the calling OS thread is left
// attached to the new namespace. A failed allocation removes the
// placeholder so no partial entry is left behind.
func (r *repository) Create(name string) (*Netns, error) {
	nsPath := filepath.Join(r.root, name)

	placeholder, err := os.OpenFile(nsPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0444)
	if err != nil {
		return nil, err
	}
	placeholder.Close()

	// the bind source must name the same thread that unshares
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	newNs, err := New()
	if err != nil {
		os.Remove(nsPath)
		return nil, err
	}

	if err := unix.Mount(threadNsPath(), nsPath, "none", unix.MS_BIND, ""); err != nil {
		newNs.Close()
		os.Remove(nsPath)
		return nil, fmt.Errorf("bind mount namespace to %s: %s", nsPath, err)
	}

	newNs.path = nsPath
	return newNs, nil
}

// Get returns a handle to the named namespace, or nil when the name does
// not exist.
func (r *repository) Get(name string) (*Netns, error) {
	return OpenPath(filepath.Join(r.root, name))
}

// Destroy detaches and removes the registry entry for name. A name that
// does not exist is a no-op. The namespace itself survives as long as
// other references to it remain open.
func (r *repository) Destroy(name string) error {
	nsPath := filepath.Join(r.root, name)
	if _, err := os.Stat(nsPath); os.IsNotExist(err) {
		return nil
	}

	// EINVAL means the placeholder was never mounted; remove it anyway
	if err := unix.Unmount(nsPath, unix.MNT_DETACH); err != nil && err != unix.EINVAL {
		return fmt.Errorf("unmount namespace %s: %s", nsPath, err)
	}

	return os.Remove(nsPath)
}

// List returns the names currently registered under the root.
func (r *repository) List() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("read registry root %s: %s", r.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
