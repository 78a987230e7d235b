// Package spn reconciles a single servicePrincipalName value against a
// declared desired state. All directory access goes through the Directory
// capability interface; state is read fresh from the directory on every
// operation and never cached across calls.
package spn

// Presence is the desired existence state of an SPN binding.
type Presence string

const (
	Present Presence = "Present"
	Absent  Presence = "Absent"
)

// Binding is one observed holder of an SPN: the account identity plus the
// opaque directory handle used to address the object for mutation.
type Binding struct {
	AccountName string
	Handle      string
}

// DesiredState declares how a single SPN should be bound. AccountName is
// required when Ensure is Present and ignored when it is Absent.
type DesiredState struct {
	Ensure      Presence
	Spn         string
	AccountName string
}

// State is the observed form of an SPN binding as reported by Describe.
// AccountName joins every holder identity in query order; Holders keeps
// the individual identities so a multi-holder anomaly stays visible.
type State struct {
	Ensure      Presence
	Spn         string
	AccountName string
	Holders     []string
}

// Directory is the capability surface the reconciler consumes. Handles
// are opaque mutation addresses (for Active Directory, distinguished
// names), distinct from the account identity used for lookup.
type Directory interface {
	QueryObjectsBySpn(spn string) ([]Binding, error)
	QueryObjectBySamAccountName(name string) (string, error)
	MutateAddSpn(handle, spn string) error
	MutateRemoveSpn(handle, spn string) error
}
