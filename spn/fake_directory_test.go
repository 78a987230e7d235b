package spn_test

import (
	"fmt"

	"f0oster/spnsync/spn"
)

// fakeDirectory is an in-memory stand-in for the LDAP-backed directory.
// Accounts are returned in insertion order, matching the query-order
// guarantee of the real implementation. Every mutation is recorded.
type fakeDirectory struct {
	order     []string
	dns       map[string]string
	spns      map[string][]string
	mutations []string

	searchErr      error
	failOnMutation int // 1-based index of the mutation call that faults
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		dns:  make(map[string]string),
		spns: make(map[string][]string),
	}
}

func (d *fakeDirectory) addAccount(name, dn string, spns ...string) {
	d.order = append(d.order, name)
	d.dns[name] = dn
	d.spns[name] = append(d.spns[name], spns...)
}

func (d *fakeDirectory) QueryObjectsBySpn(spnValue string) ([]spn.Binding, error) {
	if d.searchErr != nil {
		return nil, d.searchErr
	}

	var bindings []spn.Binding
	for _, name := range d.order {
		for _, held := range d.spns[name] {
			if held == spnValue {
				bindings = append(bindings, spn.Binding{AccountName: name, Handle: d.dns[name]})
			}
		}
	}
	return bindings, nil
}

func (d *fakeDirectory) QueryObjectBySamAccountName(name string) (string, error) {
	if d.searchErr != nil {
		return "", d.searchErr
	}

	dn, ok := d.dns[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", spn.ErrTargetAccountNotFound, name)
	}
	return dn, nil
}

func (d *fakeDirectory) MutateAddSpn(handle, spnValue string) error {
	if err := d.recordMutation("add " + handle + " " + spnValue); err != nil {
		return err
	}

	name, err := d.nameForDN(handle)
	if err != nil {
		return err
	}
	d.spns[name] = append(d.spns[name], spnValue)
	return nil
}

func (d *fakeDirectory) MutateRemoveSpn(handle, spnValue string) error {
	if err := d.recordMutation("remove " + handle + " " + spnValue); err != nil {
		return err
	}

	name, err := d.nameForDN(handle)
	if err != nil {
		return err
	}

	var kept []string
	for _, held := range d.spns[name] {
		if held != spnValue {
			kept = append(kept, held)
		}
	}
	d.spns[name] = kept
	return nil
}

func (d *fakeDirectory) recordMutation(call string) error {
	if d.failOnMutation > 0 && len(d.mutations)+1 == d.failOnMutation {
		return fmt.Errorf("%w: mutation rejected", spn.ErrDirectoryUnavailable)
	}
	d.mutations = append(d.mutations, call)
	return nil
}

func (d *fakeDirectory) nameForDN(dn string) (string, error) {
	for name, candidate := range d.dns {
		if candidate == dn {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown handle %s", dn)
}
