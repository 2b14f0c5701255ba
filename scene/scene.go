// Package scene defines the contract between the geometry engine and the
// host scene graph. The engine produces meshes, ports and metadata; a Writer
// persists them. The in-memory Stage implementation backs tests and the
// regeneration round-trip.
package scene

import "github.com/fabworks/conduit"

// Writer persists generated geometry. Implementations own all I/O; the
// geometry engine itself never touches storage.
type Writer interface {
	// WriteMesh creates (or replaces) a renderable mesh primitive at path.
	WriteMesh(path string, m *conduit.Mesh) error
	// WriteAnchor creates a child mating-reference primitive under path.
	// role distinguishes the two ends, conventionally "start" and "end".
	WriteAnchor(path string, port conduit.Port, role string) error
	// SetMetadata persists one key/value pair on the primitive at path.
	SetMetadata(path string, key string, value any) error
}

// WriteResult persists a full generation result: the mesh under its
// placement, both end anchors and the regeneration record.
func WriteResult(w Writer, path string, res *conduit.Result, pl conduit.Placement) error {
	if err := w.WriteMesh(path, res.Mesh.Transformed(pl)); err != nil {
		return err
	}
	if err := w.WriteAnchor(path, res.Start, "start"); err != nil {
		return err
	}
	if err := w.WriteAnchor(path, res.End, "end"); err != nil {
		return err
	}
	for key, value := range res.Record.Metadata() {
		if err := w.SetMetadata(path, key, value); err != nil {
			return err
		}
	}
	return nil
}
