package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrAccountManagers is returned when ACCOUNT_MANAGERS is empty or invalid.
var ErrAccountManagers = errors.New("account managers not configured")

// AccountManager is the contact printed in the footer of a branded CV.
type AccountManager struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Title string `json:"title,omitempty"`
}

const accountManagersSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["id", "name", "email"],
		"properties": {
			"id":    {"type": "string", "minLength": 1},
			"name":  {"type": "string", "minLength": 1},
			"email": {"type": "string", "minLength": 3},
			"phone": {"type": "string"},
			"title": {"type": "string"}
		}
	}
}`

var accountManagersValidator = jsonschema.MustCompileString("account_managers.json", accountManagersSchema)

// ParseAccountManagers decodes and validates the ACCOUNT_MANAGERS JSON array.
func ParseAccountManagers(raw string) ([]AccountManager, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: ACCOUNT_MANAGERS is empty", ErrAccountManagers)
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrAccountManagers, err)
	}
	if err := accountManagersValidator.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccountManagers, err)
	}

	var managers []AccountManager
	if err := json.Unmarshal([]byte(raw), &managers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccountManagers, err)
	}
	return managers, nil
}

// ResolveAccountManager returns the manager with the given id, or the first
// configured manager when id is empty or unknown.
func (c *Config) ResolveAccountManager(id string) (AccountManager, error) {
	managers, err := ParseAccountManagers(c.AccountManagers)
	if err != nil {
		return AccountManager{}, err
	}
	for _, m := range managers {
		if m.ID == id {
			return m, nil
		}
	}
	return managers[0], nil
}
