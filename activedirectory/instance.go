package activedirectory

import (
	"fmt"
	"log"

	"github.com/go-ldap/ldap/v3"
)

func NewActiveDirectoryInstance(baseDn string, domainControllerFQDN string) *ActiveDirectoryInstance {
	return &ActiveDirectoryInstance{
		BaseDn:               baseDn,
		DomainControllerFQDN: domainControllerFQDN,
	}
}

// Connect to the Active Directory Domain Controller
func (ad *ActiveDirectoryInstance) Connect(username, password string) error {
	bindString := fmt.Sprintf("ldap://%s:389", ad.DomainControllerFQDN)
	conn, err := ldap.DialURL(bindString)
	if err != nil {
		return fmt.Errorf("failed to connect to LDAP server: %w", err)
	}

	// TODO: LDAPS, IWA/GSSAPI, etc
	if err := conn.Bind(username, password); err != nil {
		conn.Close()
		return fmt.Errorf("failed to bind to LDAP server: %w", err)
	}

	res, err := conn.WhoAmI(nil)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to call WhoAmI(): %w", err)
	}
	log.Printf("Authenticated to %s as %s", bindString, res.AuthzID)

	ad.ldapConnection = conn
	return nil
}

func (ad *ActiveDirectoryInstance) Close() {
	if ad.ldapConnection != nil {
		ad.ldapConnection.Close()
	}
}
