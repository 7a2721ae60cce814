package jsonedit

import (
	"log/slog"
	"os"
)

// Store holds the authoritative document text. The document has exactly one
// logical writer; Editor reads the full current contents on every save and
// writes back a full replacement.
type Store interface {
	Contents() ([]byte, error)
	SetContents([]byte) error
}

// FileStore is a Store backed by a file on disk.
type FileStore struct {
	Path string
}

func (s *FileStore) Contents() ([]byte, error) { return os.ReadFile(s.Path) }

func (s *FileStore) SetContents(b []byte) error { return os.WriteFile(s.Path, b, 0o644) }

// Notifier is told about the outcome of each save attempt.
type Notifier interface {
	Saved(path Path)
	Failed(path Path, err error)
}

// SlogNotifier reports save outcomes through a slog logger.
type SlogNotifier struct {
	Log *slog.Logger
}

func (n *SlogNotifier) Saved(path Path) {
	n.Log.Info("value updated", slog.String("path", Format(path)))
}

func (n *SlogNotifier) Failed(path Path, err error) {
	n.Log.Error("failed to update value", slog.String("path", Format(path)), slog.String("error", err.Error()))
}

// Node is a focused view over one location of a document: its path and the
// rows currently displayed for it. It is a disposable projection, not a copy
// of document state.
type Node struct {
	Path Path
	Rows []FieldRow
}

// Editor drives the open/edit/save cycle against a document store.
type Editor struct {
	Store  Store
	Notify Notifier // optional
}

// Open seeds the edit buffer and locator label for a node.
func (e *Editor) Open(node Node) (buffer []byte, locator string) {
	return Normalize(node.Rows), Format(node.Path)
}

// Save parses the edited buffer and writes it into the document at the
// node's path. A *ParseError means the buffer itself is invalid and can be
// corrected by the user; any failure leaves the store contents untouched.
func (e *Editor) Save(node Node, edited []byte) error {
	err := e.save(node, edited)
	if e.Notify != nil {
		if err != nil {
			e.Notify.Failed(node.Path, err)
		} else {
			e.Notify.Saved(node.Path)
		}
	}
	return err
}

func (e *Editor) save(node Node, edited []byte) error {
	val, err := ParseValue(edited)
	if err != nil {
		return err
	}
	doc, err := e.Store.Contents()
	if err != nil {
		return &UpdateError{Op: "read document", Err: err}
	}
	out, err := Update(doc, node.Path, val)
	if err != nil {
		return err
	}
	if err := e.Store.SetContents(out); err != nil {
		return &UpdateError{Op: "write document", Err: err}
	}
	return nil
}
