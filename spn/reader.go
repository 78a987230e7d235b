package spn

import "fmt"

// StateReader reads the current holders of an SPN from the directory.
type StateReader struct {
	dir Directory
}

func NewStateReader(dir Directory) *StateReader {
	return &StateReader{dir: dir}
}

// Read returns every binding currently holding spn, in query order. Zero
// bindings is a valid result meaning the SPN is currently unbound.
func (r *StateReader) Read(spn string) ([]Binding, error) {
	if spn == "" {
		return nil, fmt.Errorf("%w: servicePrincipalName must not be empty", ErrInvalidInput)
	}

	bindings, err := r.dir.QueryObjectsBySpn(spn)
	if err != nil {
		return nil, fmt.Errorf("querying holders of %s: %w", spn, err)
	}
	return bindings, nil
}
