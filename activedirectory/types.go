package activedirectory

import (
	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
)

type ActiveDirectoryInstance struct {
	BaseDn               string
	DomainControllerFQDN string
	ldapConnection       *ldap.Conn
}

// SpnHolder is one directory object currently holding an SPN value. The
// DN addresses the object for mutation; the objectGUID disambiguates
// same-named objects in operator output.
type SpnHolder struct {
	SamAccountName string
	DN             string
	ObjectGUID     uuid.UUID
}
