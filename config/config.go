package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type SpnSyncConfiguration struct {
	BaseDN   string
	DcFQDN   string
	Username string
	Password string
}

func LoadEnvConfig(configName string) SpnSyncConfiguration {
	err := godotenv.Load(configName)
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	return SpnSyncConfiguration{
		BaseDN:   os.Getenv("LDAP_BASEDN"),
		DcFQDN:   os.Getenv("LDAP_DCFQDN"),
		Username: os.Getenv("LDAP_USERNAME"),
		Password: os.Getenv("LDAP_PASSWORD"),
	}
}
