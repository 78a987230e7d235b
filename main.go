package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"f0oster/spnsync/activedirectory"
	"f0oster/spnsync/config"
	"f0oster/spnsync/spn"
)

func main() {
	op := flag.String("op", "describe", "Operation to run: describe, test or converge")
	spnValue := flag.String("spn", "", "Service principal name, e.g. HOST/LON-DC1")
	account := flag.String("account", "", "sAMAccountName the SPN should be bound to (required with -ensure present)")
	ensure := flag.String("ensure", "present", "Desired presence: present or absent")
	flag.Parse()

	cfg := config.LoadEnvConfig("settings.env")

	adInstance := activedirectory.NewActiveDirectoryInstance(cfg.BaseDN, cfg.DcFQDN)
	if err := adInstance.Connect(cfg.Username, cfg.Password); err != nil {
		log.Fatalf("failed to connect to %s: %v", cfg.DcFQDN, err)
	}
	defer adInstance.Close()

	reconciler := spn.NewReconciler(adInstance)

	switch *op {
	case "describe":
		state, err := reconciler.Describe(*spnValue)
		if err != nil {
			log.Fatalf("describe failed: %v", err)
		}
		fmt.Printf("Ensure: %s\n", state.Ensure)
		fmt.Printf("ServicePrincipalName: %s\n", state.Spn)
		fmt.Printf("Account: %s\n", state.AccountName)

	case "test":
		desired, err := desiredState(*ensure, *spnValue, *account)
		if err != nil {
			log.Fatalf("%v", err)
		}
		satisfied, err := reconciler.Test(desired)
		if err != nil {
			log.Fatalf("test failed: %v", err)
		}
		fmt.Println(satisfied)
		if !satisfied {
			os.Exit(1)
		}

	case "converge":
		desired, err := desiredState(*ensure, *spnValue, *account)
		if err != nil {
			log.Fatalf("%v", err)
		}
		satisfied, err := reconciler.Test(desired)
		if err != nil {
			log.Fatalf("test failed: %v", err)
		}
		if satisfied {
			log.Printf("%s already in desired state", *spnValue)
			return
		}
		if err := reconciler.Converge(desired); err != nil {
			log.Fatalf("converge failed: %v", err)
		}
		log.Printf("Converged %s", *spnValue)

	default:
		log.Fatalf("unknown operation: %s", *op)
	}
}

func desiredState(ensure, spnValue, account string) (spn.DesiredState, error) {
	switch ensure {
	case "present":
		return spn.DesiredState{Ensure: spn.Present, Spn: spnValue, AccountName: account}, nil
	case "absent":
		return spn.DesiredState{Ensure: spn.Absent, Spn: spnValue}, nil
	default:
		return spn.DesiredState{}, fmt.Errorf("unknown ensure value %q", ensure)
	}
}
