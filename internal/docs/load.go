package docs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadReturn loads a return from a YAML file.
func LoadReturn(path string) (*Return, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read return file: %w", err)
	}

	ret, err := ParseReturn(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse return file %s: %w", path, err)
	}
	return ret, nil
}

// ParseReturn parses a return from YAML bytes and validates document ids.
func ParseReturn(data []byte) (*Return, error) {
	var ret Return
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, err
	}

	if ret.FilingStatus == "" {
		ret.FilingStatus = FilingSingle
	} else {
		fs, err := ParseFilingStatus(string(ret.FilingStatus))
		if err != nil {
			return nil, err
		}
		ret.FilingStatus = fs
	}

	if err := validateIDs(&ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

// validateIDs rejects empty or duplicate document ids. Later lookups
// key on these ids, so collisions would silently resolve to the first
// matching document.
func validateIDs(ret *Return) error {
	seen := make(map[string]bool)
	check := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s document is missing an id", kind)
		}
		key := kind + ":" + id
		if seen[key] {
			return fmt.Errorf("duplicate %s id %q", kind, id)
		}
		seen[key] = true
		return nil
	}

	for i := range ret.W2s {
		if err := check("w2", ret.W2s[i].ID); err != nil {
			return err
		}
	}
	for i := range ret.Int1099s {
		if err := check("1099int", ret.Int1099s[i].ID); err != nil {
			return err
		}
	}
	for i := range ret.Div1099s {
		if err := check("1099div", ret.Div1099s[i].ID); err != nil {
			return err
		}
	}
	for i := range ret.Transactions {
		if err := check("tx", ret.Transactions[i].ID); err != nil {
			return err
		}
	}
	for i := range ret.Businesses {
		if err := check("business", ret.Businesses[i].ID); err != nil {
			return err
		}
	}
	return nil
}
