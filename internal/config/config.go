// Package config stores per-bank account settings in a dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAccountType is used when a bank has no ACCOUNT_TYPE_<BANK> entry.
const DefaultAccountType = "Bank"

// Account identifies the ledger account a statement is imported into. It is
// read once per run and never changed while records are built.
type Account struct {
	Name string
	Type string
}

// Store is a key-value view over a .env file. Process environment variables
// take precedence over values in the file.
type Store struct {
	path   string
	values map[string]string
	lookup func(string) (string, bool)
}

// Load reads the .env file at path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		values = map[string]string{}
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Store{path: path, values: values, lookup: os.LookupEnv}, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Get returns the value for key.
func (s *Store) Get(key string) (string, bool) {
	if v, ok := s.lookup(key); ok && v != "" {
		return v, true
	}
	v, ok := s.values[key]
	return v, ok && v != ""
}

// Set stores key in the file and writes it back to disk.
func (s *Store) Set(key, value string) error {
	next := maps.Clone(s.values)
	next[key] = value
	if err := godotenv.Write(next, s.path); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	s.values = next
	return nil
}

// AccountNameKey is the key holding the account name for bank.
func AccountNameKey(bank string) string { return "ACCOUNT_NAME_" + envSuffix(bank) }

// AccountTypeKey is the key holding the account type for bank.
func AccountTypeKey(bank string) string { return "ACCOUNT_TYPE_" + envSuffix(bank) }

// OutputNameKey is the key holding the output base name for bank.
func OutputNameKey(bank string) string { return "OUTPUT_NAME_" + envSuffix(bank) }

func envSuffix(bank string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' || r == '.' {
			return '_'
		}
		return r
	}, bank))
}

// DefaultAccountName is the name used when none has been configured.
func DefaultAccountName(bankName string) string {
	return bankName + " Account"
}

// Account returns the settings for bank, filling in defaults.
func (s *Store) Account(bankKey, bankName string) Account {
	acct := Account{Name: DefaultAccountName(bankName), Type: DefaultAccountType}
	if v, ok := s.Get(AccountNameKey(bankKey)); ok {
		acct.Name = v
	}
	if v, ok := s.Get(AccountTypeKey(bankKey)); ok {
		acct.Type = v
	}
	return acct
}

// EnsureAccount returns the settings for bank and persists the default
// account name when none is configured yet, so it can be edited later.
func (s *Store) EnsureAccount(bankKey, bankName string) (Account, bool, error) {
	acct := s.Account(bankKey, bankName)
	if _, ok := s.Get(AccountNameKey(bankKey)); ok {
		return acct, false, nil
	}
	if err := s.Set(AccountNameKey(bankKey), acct.Name); err != nil {
		return Account{}, false, err
	}
	return acct, true, nil
}

// OutputName returns the configured output base name for bank, or fallback.
func (s *Store) OutputName(bankKey, fallback string) string {
	if v, ok := s.Get(OutputNameKey(bankKey)); ok {
		return v
	}
	return fallback
}
