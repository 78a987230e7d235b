package activedirectory

import (
	"fmt"
	"log"

	"f0oster/spnsync/activedirectory/ldaphelpers"
	"f0oster/spnsync/spn"

	"github.com/go-ldap/ldap/v3"
)

const spnAttribute = "servicePrincipalName"

// SearchSpnHolders queries for every object whose servicePrincipalName
// attribute contains spnValue, in server return order. Zero holders is a
// valid result meaning the SPN is unbound.
func (ad *ActiveDirectoryInstance) SearchSpnHolders(spnValue string) ([]SpnHolder, error) {
	filter := ldaphelpers.And(
		ldaphelpers.Present("sAMAccountName"),
		ldaphelpers.Eq(spnAttribute, spnValue),
	).String()

	searchRequest := ldap.NewSearchRequest(
		ad.BaseDn,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		filter,
		[]string{"sAMAccountName", "objectGUID"},
		nil,
	)

	searchResults, err := ad.ldapConnection.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: search for holders of %s failed: %v", spn.ErrDirectoryUnavailable, spnValue, err)
	}

	holders := make([]SpnHolder, 0, len(searchResults.Entries))
	for _, entry := range searchResults.Entries {
		holder := SpnHolder{
			SamAccountName: entry.GetAttributeValue("sAMAccountName"),
			DN:             entry.DN,
		}

		guid, err := GuidFromObjectGUID(entry.GetRawAttributeValue("objectGUID"))
		if err != nil {
			log.Printf("Skipping objectGUID for %s: %v", entry.DN, err)
		} else {
			holder.ObjectGUID = guid
		}

		log.Printf("%s held by %s (%s, objectGUID %s)", spnValue, holder.SamAccountName, holder.DN, holder.ObjectGUID)
		holders = append(holders, holder)
	}

	return holders, nil
}

// QueryObjectsBySpn projects the holders of spnValue to the reconciler's
// binding shape: account identity for the diff, DN for mutation.
func (ad *ActiveDirectoryInstance) QueryObjectsBySpn(spnValue string) ([]spn.Binding, error) {
	holders, err := ad.SearchSpnHolders(spnValue)
	if err != nil {
		return nil, err
	}

	bindings := make([]spn.Binding, len(holders))
	for i, holder := range holders {
		bindings[i] = spn.Binding{
			AccountName: holder.SamAccountName,
			Handle:      holder.DN,
		}
	}
	return bindings, nil
}

// QueryObjectBySamAccountName resolves an account name to the DN used to
// address it for mutation. An ambiguous name (more than one match) is
// treated the same as no match.
func (ad *ActiveDirectoryInstance) QueryObjectBySamAccountName(name string) (string, error) {
	searchRequest := ldap.NewSearchRequest(
		ad.BaseDn,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		ldaphelpers.Eq("sAMAccountName", name).String(),
		[]string{"sAMAccountName"},
		nil,
	)

	searchResults, err := ad.ldapConnection.Search(searchRequest)
	if err != nil {
		return "", fmt.Errorf("%w: search for account %s failed: %v", spn.ErrDirectoryUnavailable, name, err)
	}

	switch len(searchResults.Entries) {
	case 1:
		return searchResults.Entries[0].DN, nil
	case 0:
		return "", fmt.Errorf("%w: %s", spn.ErrTargetAccountNotFound, name)
	default:
		return "", fmt.Errorf("%w: %s matched %d objects", spn.ErrTargetAccountNotFound, name, len(searchResults.Entries))
	}
}

// MutateAddSpn adds spnValue to the servicePrincipalName attribute of the
// object at handle.
func (ad *ActiveDirectoryInstance) MutateAddSpn(handle, spnValue string) error {
	modifyRequest := ldap.NewModifyRequest(handle, nil)
	modifyRequest.Add(spnAttribute, []string{spnValue})

	if err := ad.ldapConnection.Modify(modifyRequest); err != nil {
		return fmt.Errorf("%w: adding %s to %s failed: %v", spn.ErrDirectoryUnavailable, spnValue, handle, err)
	}
	log.Printf("Added %s to %s", spnValue, handle)
	return nil
}

// MutateRemoveSpn removes spnValue from the servicePrincipalName attribute
// of the object at handle.
func (ad *ActiveDirectoryInstance) MutateRemoveSpn(handle, spnValue string) error {
	modifyRequest := ldap.NewModifyRequest(handle, nil)
	modifyRequest.Delete(spnAttribute, []string{spnValue})

	if err := ad.ldapConnection.Modify(modifyRequest); err != nil {
		return fmt.Errorf("%w: removing %s from %s failed: %v", spn.ErrDirectoryUnavailable, spnValue, handle, err)
	}
	log.Printf("Removed %s from %s", spnValue, handle)
	return nil
}
