// Package buildstock provides a client for the building-stock data service
// REST API.
//
// The client composes request URLs against a configured base address,
// attaches the API token to privileged calls and maps responses onto typed
// records. Failures are classified into a small, closed error set: 403
// becomes ErrUnauthorized, other 4xx responses become ClientError, and
// everything else (5xx, transport failures) becomes ServerError.
//
// # Usage
//
//	client, err := buildstock.NewClient(address, "/api/v0/", creds, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Public reads work without credentials.
//	stats, err := client.GetBuildingStatistics(ctx, buildstock.Scope{NutsCode: "DE80N"})
//
//	// Writes require credentials at construction.
//	err = client.PostTypeInfo(ctx, infos)
//
// Without credentials the client runs in read-only mode and privileged
// methods fail fast with ErrMissingCredentials before any network request.
package buildstock
