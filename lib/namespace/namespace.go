package namespace

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sys/unix"
)

// Netns is an open handle to a kernel network namespace. The descriptor
// keeps the namespace alive even when no thread is attached to it and no
// bind mount references it. path is set only for handles that came from
// the filesystem registry or an explicit path.
type Netns struct {
	file *os.File
	path string
}

func threadNsPath() string {
	return fmt.Sprintf("/proc/%d/task/%d/ns/net", os.Getpid(), unix.Gettid())
}

// Current returns a handle to the network namespace the calling OS
// thread is attached to.
func Current() (*Netns, error) {
	file, err := os.OpenFile(threadNsPath(), os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open current namespace: %s", err)
	}
	return &Netns{file: file}, nil
}

// New detaches the calling OS thread into a new, empty network namespace
// and returns a handle to it. The thread is left attached to the new
// namespace; callers that care which thread that is must hold
// runtime.LockOSThread across the call.
func New() (*Netns, error) {
	if err := unix.Unshare(unix.CLONE_NEWNET); err != nil {
		return nil, fmt.Errorf("unshare network namespace: %s", err)
	}
	return Current()
}

// OpenPath returns a handle to the namespace file at path, or nil when
// no such file exists.
func OpenPath(path string) (*Netns, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open namespace %s: %s", path, err)
	}
	return &Netns{file: file, path: path}, nil
}

// Set attaches the calling OS thread to the namespace. Other threads in
// the process are unaffected.
func (n *Netns) Set() error {
	if err := unix.Setns(int(n.file.Fd()), unix.CLONE_NEWNET); err != nil {
		return fmt.Errorf("setns %s: %s", n, err)
	}
	return nil
}

// Execute runs callback with the calling goroutine pinned to an OS
// thread attached to this namespace, then re-attaches the thread's
// original namespace on every exit path, panics included. When the
// original namespace cannot be restored the thread is left locked so the
// runtime discards it instead of reusing it in the wrong namespace.
func (n *Netns) Execute(callback func() error) (err error) {
	runtime.LockOSThread()

	original, err := Current()
	if err != nil {
		runtime.UnlockOSThread()
		return err
	}

	if err := n.Set(); err != nil {
		original.Close()
		runtime.UnlockOSThread()
		return err
	}

	defer func() {
		restoreErr := original.Set()
		original.Close()
		if restoreErr != nil {
			if err == nil {
				err = restoreErr
			}
			return
		}
		runtime.UnlockOSThread()
	}()

	return callback()
}

// Equal reports whether both handles refer to the same kernel namespace,
// compared by the (device, inode) pair of the open descriptors. Handles
// whose metadata cannot be read compare unequal.
func (n *Netns) Equal(other *Netns) bool {
	if n == other {
		return true
	}

	var nStat, otherStat unix.Stat_t
	if err := unix.Fstat(int(n.file.Fd()), &nStat); err != nil {
		return false
	}
	if err := unix.Fstat(int(other.file.Fd()), &otherStat); err != nil {
		return false
	}

	return nStat.Dev == otherStat.Dev && nStat.Ino == otherStat.Ino
}

// UniqueID renders the kernel identity of the namespace.
func (n *Netns) UniqueID() string {
	var stat unix.Stat_t
	if err := unix.Fstat(int(n.file.Fd()), &stat); err != nil {
		return "NS(unknown)"
	}
	return fmt.Sprintf("NS(%d:%d)", stat.Dev, stat.Ino)
}

func (n *Netns) String() string {
	var stat unix.Stat_t
	if err := unix.Fstat(int(n.file.Fd()), &stat); err != nil {
		return fmt.Sprintf("NS(%d: unknown)", n.file.Fd())
	}
	return fmt.Sprintf("NS(%d: %d, %d)", n.file.Fd(), stat.Dev, stat.Ino)
}

func (n *Netns) Fd() uintptr {
	return n.file.Fd()
}

func (n *Netns) Path() string {
	return n.path
}

// Name returns the basename of the handle's path, or "" for anonymous
// handles.
func (n *Netns) Name() string {
	if n.path == "" {
		return ""
	}
	return filepath.Base(n.path)
}

// Close releases the descriptor. The kernel namespace is destroyed only
// when no other reference remains.
func (n *Netns) Close() error {
	return n.file.Close()
}
