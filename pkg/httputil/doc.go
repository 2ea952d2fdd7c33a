// Package httputil provides the HTTP client used to fetch dictionary pages.
//
// # Overview
//
// Two concerns live here:
//
//   - [Client]: a GET-oriented HTTP client with response caching
//   - [Retry]: automatic retry with exponential backoff
//
// # Caching
//
// [Client.Cached] consults a [cache.Cache] before going to the network and
// stores fetched responses for the client's TTL. Dictionary pages run to a
// couple of megabytes each, so a warm cache turns a half-minute download
// into a local read:
//
//	client := httputil.NewClient(fileCache, "opted:", cache.TTLDictionary, nil)
//	data, hit, err := client.Cached(ctx, url, false, func() ([]byte, error) {
//	    text, err := client.GetText(ctx, url)
//	    return []byte(text), err
//	})
//
// # Retry
//
// Transient failures are wrapped in [RetryableError]: connection errors and
// 5xx responses retry, 404 and other client errors fail immediately. The
// schedule is exponential, starting at one second and doubling per attempt.
//
// # Errors
//
// [ErrNotFound] reports a 404; [ErrNetwork] covers connection failures and
// non-OK statuses. Both are wrapped with detail, so check them with
// errors.Is.
package httputil
