package spn_test

import (
	"errors"
	"testing"

	"f0oster/spnsync/spn"
)

func TestStateReader_EmptySpnIsRejected(t *testing.T) {
	reader := spn.NewStateReader(newFakeDirectory())

	_, err := reader.Read("")
	if !errors.Is(err, spn.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty SPN, got %v", err)
	}
}

func TestStateReader_UnboundSpnIsEmptyResult(t *testing.T) {
	dir := newFakeDirectory()
	dir.addAccount("LON-DC1$", "CN=LON-DC1,OU=Domain Controllers,DC=corp,DC=local")

	reader := spn.NewStateReader(dir)
	bindings, err := reader.Read("HOST/LON-DC1")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(bindings) != 0 {
		t.Errorf("expected zero bindings for unbound SPN, got %d", len(bindings))
	}
}

func TestStateReader_ReturnsHoldersInQueryOrder(t *testing.T) {
	dir := newFakeDirectory()
	dir.addAccount("LON-DC2$", "CN=LON-DC2,OU=Domain Controllers,DC=corp,DC=local", "HOST/LON-DC1")
	dir.addAccount("LON-DC3$", "CN=LON-DC3,OU=Domain Controllers,DC=corp,DC=local", "HOST/LON-DC1")
	dir.addAccount("LON-SQL1$", "CN=LON-SQL1,OU=Servers,DC=corp,DC=local", "MSSQLSvc/LON-SQL1")

	reader := spn.NewStateReader(dir)
	bindings, err := reader.Read("HOST/LON-DC1")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := []string{"LON-DC2$", "LON-DC3$"}
	if len(bindings) != len(want) {
		t.Fatalf("expected %d bindings, got %d", len(want), len(bindings))
	}
	for i, binding := range bindings {
		if binding.AccountName != want[i] {
			t.Errorf("binding %d: got %s, want %s", i, binding.AccountName, want[i])
		}
		if binding.Handle == "" {
			t.Errorf("binding %d: missing handle", i)
		}
	}
}

func TestStateReader_SurfacesDirectoryFault(t *testing.T) {
	dir := newFakeDirectory()
	dir.searchErr = spn.ErrDirectoryUnavailable

	reader := spn.NewStateReader(dir)
	_, err := reader.Read("HOST/LON-DC1")
	if !errors.Is(err, spn.ErrDirectoryUnavailable) {
		t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
	}
}
