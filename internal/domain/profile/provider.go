// Package profile defines the contract for the data provider that supplies
// professional, social and company attributes for a contact.
//
// The bundled SyntheticProfileProvider fabricates plausible data from
// parameter tables. Its output is labelled with the "synthetic" data source
// and must not be shown to users as verified fact.
package profile

import (
	"context"
	"errors"

	"github.com/okian/leadintel/internal/domain/model"
)

// Sentinel errors for providers.
var (
	ErrInsufficientData = errors.New("insufficient contact data for enrichment")
	ErrProviderCanceled = errors.New("profile provider canceled")
)

// Provider supplies a pre-scoring profile for a contact. One call is made
// per enrichment request; retries belong to the caller.
type Provider interface {
	// Name is recorded as the dataSource of every record built from this provider.
	Name() string

	// Synthesize returns the profile for the contact, honoring ctx for
	// cancellation. Sub-profiles the provider cannot build are nil.
	Synthesize(ctx context.Context, c model.Contact, industry string) (*model.Profile, error)
}
