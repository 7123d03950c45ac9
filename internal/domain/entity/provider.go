// Package entity contains the core business objects of the project.
package entity

// Provider represents the identity provider an account authenticates with.
type Provider string

const (
	// ProviderLocal indicates authentication via a stored password hash.
	ProviderLocal Provider = "LOCAL"
	// ProviderGoogle indicates authentication federated through Google.
	ProviderGoogle Provider = "GOOGLE"
)

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the Provider is a valid value.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle:
		return true
	default:
		return false
	}
}

// IsLocal reports whether the provider uses locally stored credentials.
func (p Provider) IsLocal() bool {
	return p == ProviderLocal
}
