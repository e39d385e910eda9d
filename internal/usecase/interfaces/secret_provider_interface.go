package interfaces

import "context"

// ISecretProvider fetches the Bling API key from the secondary store.
//
// A missing or empty key is a configuration error that must block any ERP
// call; implementations return ErrChaveAPINaoConfigurada-compatible errors
// rather than an empty string.

type ISecretProvider interface {
	BlingAPIKey(ctx context.Context) (string, error)
}
