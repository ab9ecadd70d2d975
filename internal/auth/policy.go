package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// PolicyMode names the behavior for a (resource, method) pair that has no
// policy entry: allow-by-default leaves it unprotected, deny-by-default
// rejects every caller.
type PolicyMode string

const (
	AllowByDefault PolicyMode = "allow-by-default"
	DenyByDefault  PolicyMode = "deny-by-default"
)

// ParsePolicyMode validates a raw mode string.
func ParsePolicyMode(raw string) (PolicyMode, error) {
	switch PolicyMode(raw) {
	case AllowByDefault, DenyByDefault:
		return PolicyMode(raw), nil
	default:
		return "", fmt.Errorf("unknown policy mode %q", raw)
	}
}

// PolicyTable maps resource name -> HTTP method -> permitted roles.
type PolicyTable map[string]map[string][]domain.Role

// EndpointPolicy is the static per-endpoint role restriction table.
// Read-only after construction.
type EndpointPolicy struct {
	mode    PolicyMode
	entries map[string]map[string]map[domain.Role]struct{}
}

// NewEndpointPolicy builds a policy from the table. Methods are normalized
// to upper case.
func NewEndpointPolicy(table PolicyTable, mode PolicyMode) *EndpointPolicy {
	entries := make(map[string]map[string]map[domain.Role]struct{}, len(table))
	for resource, methods := range table {
		byMethod := make(map[string]map[domain.Role]struct{}, len(methods))
		for method, roles := range methods {
			set := make(map[domain.Role]struct{}, len(roles))
			for _, role := range roles {
				set[role] = struct{}{}
			}
			byMethod[strings.ToUpper(method)] = set
		}
		entries[resource] = byMethod
	}
	return &EndpointPolicy{mode: mode, entries: entries}
}

// Mode returns the configured default behavior.
func (p *EndpointPolicy) Mode() PolicyMode {
	return p.mode
}

// Lookup returns the permitted role set for (resource, method) and whether
// the endpoint is protected. Under allow-by-default a lookup miss means
// unprotected; under deny-by-default it means protected with an empty
// role set, so no caller qualifies.
func (p *EndpointPolicy) Lookup(resource, method string) (map[domain.Role]struct{}, bool) {
	if byMethod, ok := p.entries[resource]; ok {
		if roles, ok := byMethod[strings.ToUpper(method)]; ok {
			return roles, true
		}
	}
	if p.mode == DenyByDefault {
		return nil, true
	}
	return nil, false
}

// LoadPolicyFile reads a policy table from a JSON file shaped as
// resourceName -> method -> [roles].
func LoadPolicyFile(path string) (PolicyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	var decoded map[string]map[string][]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}

	table := make(PolicyTable, len(decoded))
	for resource, methods := range decoded {
		byMethod := make(map[string][]domain.Role, len(methods))
		for method, roles := range methods {
			parsed := make([]domain.Role, 0, len(roles))
			for _, r := range roles {
				role, err := domain.ParseRole(r)
				if err != nil {
					return nil, fmt.Errorf("policy %s %s: %w", resource, method, err)
				}
				parsed = append(parsed, role)
			}
			byMethod[method] = parsed
		}
		table[resource] = byMethod
	}
	return table, nil
}

// DefaultPolicy returns the built-in endpoint restrictions for the platform.
func DefaultPolicy() PolicyTable {
	admin := []domain.Role{domain.RoleAdmin}
	adminPublisher := []domain.Role{domain.RoleAdmin, domain.RolePublisher}
	adminAdvertiser := []domain.Role{domain.RoleAdmin, domain.RoleAdvertiser}

	return PolicyTable{
		"users": {
			"POST":   admin,
			"GET":    admin,
			"PUT":    admin,
			"DELETE": admin,
		},
		"publishers": {
			"POST":   admin,
			"GET":    adminPublisher,
			"PUT":    adminPublisher,
			"DELETE": admin,
		},
		"advertisers": {
			"POST":   admin,
			"GET":    adminAdvertiser,
			"PUT":    adminAdvertiser,
			"DELETE": admin,
		},
		"campaigns": {
			"POST":   adminAdvertiser,
			"GET":    adminAdvertiser,
			"PUT":    adminAdvertiser,
			"DELETE": adminAdvertiser,
		},
		"sites": {
			"POST":   adminPublisher,
			"GET":    adminPublisher,
			"PUT":    adminPublisher,
			"DELETE": adminPublisher,
		},
		"ad_zones": {
			"POST":   adminPublisher,
			"GET":    adminPublisher,
			"PUT":    adminPublisher,
			"DELETE": adminPublisher,
		},
	}
}
