package spn

import (
	"fmt"
	"strings"
)

// HolderSeparator joins multiple holder identities in Describe output.
const HolderSeparator = ";"

// Reconciler converges a single SPN onto its desired binding. Each public
// operation sources its own fresh read from the directory.
type Reconciler struct {
	dir    Directory
	reader *StateReader
}

func NewReconciler(dir Directory) *Reconciler {
	return &Reconciler{
		dir:    dir,
		reader: NewStateReader(dir),
	}
}

// Describe reports the current binding state of spn. When more than one
// account holds the SPN, AccountName joins every identity in query order
// rather than silently picking one.
func (rc *Reconciler) Describe(spn string) (State, error) {
	bindings, err := rc.reader.Read(spn)
	if err != nil {
		return State{}, err
	}

	state := State{Ensure: Absent, Spn: spn}
	if len(bindings) == 0 {
		return state, nil
	}

	state.Ensure = Present
	state.Holders = make([]string, len(bindings))
	for i, binding := range bindings {
		state.Holders[i] = binding.AccountName
	}
	state.AccountName = strings.Join(state.Holders, HolderSeparator)
	return state, nil
}

// Converge applies the minimal mutation set to reach desired: the SPN is
// removed from every non-target holder and added to the target if it does
// not already hold it, or removed from all holders when Ensure is Absent.
// Callers check Test first; Converge assumes work is needed but still
// re-reads current state rather than trusting a prior Describe.
//
// The first mutation fault aborts the sequence. Already-applied mutations
// are not rolled back; the directory has no multi-object transaction.
func (rc *Reconciler) Converge(desired DesiredState) error {
	if err := validateDesired(desired); err != nil {
		return err
	}

	if desired.Ensure == Absent {
		return rc.detachAll(desired.Spn)
	}

	// Resolve the target before touching current holders so a missing
	// target can never leave the SPN orphaned.
	targetHandle, err := rc.dir.QueryObjectBySamAccountName(desired.AccountName)
	if err != nil {
		return fmt.Errorf("resolving account %s: %w", desired.AccountName, err)
	}

	bindings, err := rc.reader.Read(desired.Spn)
	if err != nil {
		return err
	}

	// The attach decision uses the pre-mutation snapshot.
	targetHolds := false
	for _, binding := range bindings {
		if binding.AccountName == desired.AccountName {
			targetHolds = true
		}
	}

	for _, binding := range bindings {
		if binding.AccountName == desired.AccountName {
			continue
		}
		if err := rc.dir.MutateRemoveSpn(binding.Handle, desired.Spn); err != nil {
			return fmt.Errorf("removing %s from %s: %w", desired.Spn, binding.AccountName, err)
		}
	}

	if !targetHolds {
		if err := rc.dir.MutateAddSpn(targetHandle, desired.Spn); err != nil {
			return fmt.Errorf("adding %s to %s: %w", desired.Spn, desired.AccountName, err)
		}
	}

	return nil
}

func (rc *Reconciler) detachAll(spn string) error {
	bindings, err := rc.reader.Read(spn)
	if err != nil {
		return err
	}

	for _, binding := range bindings {
		if err := rc.dir.MutateRemoveSpn(binding.Handle, spn); err != nil {
			return fmt.Errorf("removing %s from %s: %w", spn, binding.AccountName, err)
		}
	}
	return nil
}

// Test reports whether the directory already matches desired. With more
// than one holder the joined AccountName can never equal a single desired
// account, so a multi-holder state is never satisfied.
func (rc *Reconciler) Test(desired DesiredState) (bool, error) {
	if err := validateDesired(desired); err != nil {
		return false, err
	}

	current, err := rc.Describe(desired.Spn)
	if err != nil {
		return false, err
	}

	if current.Ensure != desired.Ensure {
		return false, nil
	}
	if desired.Ensure == Present && current.AccountName != desired.AccountName {
		return false, nil
	}
	return true, nil
}

func validateDesired(desired DesiredState) error {
	if desired.Spn == "" {
		return fmt.Errorf("%w: servicePrincipalName must not be empty", ErrInvalidInput)
	}

	switch desired.Ensure {
	case Present:
		if desired.AccountName == "" {
			return fmt.Errorf("%w: account is required when ensure is Present", ErrInvalidInput)
		}
	case Absent:
	default:
		return fmt.Errorf("%w: unknown ensure value %q", ErrInvalidInput, desired.Ensure)
	}
	return nil
}
